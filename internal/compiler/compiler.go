// Package compiler implements rill's AST → IR lowering: a single recursive
// descent over the AST that threads a scope and a "current block" cursor,
// classifying every expression with a Type and, along the way, emitting
// instructions, advancing the cursor, and monomorphising function calls on
// demand.
package compiler

import (
	"strconv"

	"github.com/rill-lang/rill/internal/ast"
	"github.com/rill-lang/rill/internal/ir"
	"github.com/rill-lang/rill/internal/parser"
	"github.com/rill-lang/rill/internal/scope"
	"github.com/rill-lang/rill/internal/types"
)

type compiler struct {
	prog *ir.Program
}

// CompileProgram parses src, lowers it to a typed IR program and returns the
// program, the type of the whole source expression (the "main" function's
// declared return shape), and the first error encountered in either stage.
func CompileProgram(src string) (*ir.Program, types.Type, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		return nil, nil, err
	}

	prog := ir.NewProgram()
	fn := ir.NewFunction()
	entry := fn.NewBlock()
	prog.AddFunction(fn)

	c := &compiler{prog: prog}
	ty, block, err := c.compileExpr(expr, scope.New(), fn, entry)
	if err != nil {
		return nil, nil, err
	}

	types.RegisterReturns(ty, fn)
	block.Ret()
	return prog, ty, nil
}

// compileExpr classifies e, possibly appending instructions to block
// (and/or replacing it with a later block along the function's control-flow
// graph), and returns the resulting type and cursor.
func (c *compiler) compileExpr(e ast.Expr, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return c.compileIntLit(n, block)
	case *ast.BoolLit:
		k := int32(0)
		if n.Value {
			k = 1
		}
		return &types.Bool{Var: block.ConstantInt(k)}, block, nil
	case *ast.Ident:
		ty, ok := sc.Get(n.Lexeme)
		if !ok {
			return nil, block, newError(n.Start, n.End, UndefinedVariable, "undefined variable %q", n.Lexeme)
		}
		return ty, block, nil
	case *ast.Tuple:
		return c.compileTuple(n, sc, fn, block)
	case *ast.Block:
		return c.compileBlock(n, sc, fn, block)
	case *ast.Func:
		impls := types.NewImplList()
		fnVal := &types.Func{Pattern: n.Pattern, Body: n.Body, Impls: impls, Name: n.Name}
		if n.Name != nil {
			sc.Assign(*n.Name, fnVal)
		}
		return fnVal, block, nil
	case *ast.If:
		return c.compileIf(n, sc, fn, block)
	case *ast.Binary:
		switch n.Op {
		case ast.Plus:
			return c.compilePlus(n, sc, fn, block)
		case ast.SingleEquals:
			return c.compileAssign(n, sc, fn, block)
		case ast.Bracket:
			return c.compileCall(n, sc, fn, block)
		case ast.Else:
			return c.compileElse(n, sc, fn, block)
		default:
			panic("compiler: unknown binary op")
		}
	default:
		panic("compiler: unknown expression node")
	}
}

func (c *compiler) compileIntLit(n *ast.IntLit, block *ir.Block) (types.Type, *ir.Block, error) {
	v, err := strconv.ParseInt(n.Lexeme, 10, 32)
	if err != nil {
		return nil, block, newError(n.Start, n.End, IntLiteralOutOfRange,
			"integer literal %q does not fit in a signed 32-bit value", n.Lexeme)
	}
	return &types.Int{Var: block.ConstantInt(int32(v))}, block, nil
}

func (c *compiler) compileTuple(n *ast.Tuple, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	elems := make([]types.Type, len(n.Exprs))
	cur := block
	for i, sub := range n.Exprs {
		ty, next, err := c.compileExpr(sub, sc, fn, cur)
		if err != nil {
			return nil, next, err
		}
		elems[i] = ty
		cur = next
	}
	return &types.Tuple{Elems: elems}, cur, nil
}

func (c *compiler) compileBlock(n *ast.Block, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	cur := block
	for _, sub := range n.Exprs {
		_, next, err := c.compileExpr(sub, sc, fn, cur)
		if err != nil {
			return nil, next, err
		}
		cur = next
	}
	return c.compileExpr(n.Last, sc, fn, cur)
}

func (c *compiler) compilePlus(n *ast.Binary, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	leftTy, block, err := c.compileExpr(n.Left, sc, fn, block)
	if err != nil {
		return nil, block, err
	}
	rightTy, block, err := c.compileExpr(n.Right, sc, fn, block)
	if err != nil {
		return nil, block, err
	}
	left, ok1 := leftTy.(*types.Int)
	right, ok2 := rightTy.(*types.Int)
	if !ok1 || !ok2 {
		return nil, block, newError(n.Start, n.End, TypeError, "+ requires two Int operands")
	}
	return &types.Int{Var: block.AddInt(left.Var, right.Var)}, block, nil
}

func (c *compiler) compileAssign(n *ast.Binary, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	rhsTy, block, err := c.compileExpr(n.Right, sc, fn, block)
	if err != nil {
		return nil, block, err
	}
	if err := bindPattern(n.Left, rhsTy, sc); err != nil {
		return nil, block, err
	}
	return rhsTy, block, nil
}

// compileCall implements application "f(x)": compile the callee, require
// Func, compile the argument, reuse a matching implementation by structural
// shape or monomorphise a new one.
func (c *compiler) compileCall(n *ast.Binary, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	calleeTy, block, err := c.compileExpr(n.Left, sc, fn, block)
	if err != nil {
		return nil, block, err
	}
	fnVal, ok := calleeTy.(*types.Func)
	if !ok {
		start, end := n.Left.Span()
		return nil, block, newError(start, end, TypeError, "call target is not a function")
	}
	argTy, block, err := c.compileExpr(n.Right, sc, fn, block)
	if err != nil {
		return nil, block, err
	}

	if impl, ok := fnVal.Impls.Find(argTy); ok {
		args := types.Vars(argTy)
		returns := block.Call(impl.Entry, args, types.Size(impl.ReturnTy))
		return types.MapTo(impl.ReturnTy, returns), block, nil
	}

	calleeFn := ir.NewFunction()
	calleeEntry := calleeFn.NewBlock()
	paramTy := types.AsParameter(argTy, calleeFn)

	calleeScope := scope.Child()
	if fnVal.Name != nil {
		calleeScope.Assign(*fnVal.Name, fnVal)
	}
	if err := bindPattern(fnVal.Pattern, paramTy, calleeScope); err != nil {
		return nil, block, err
	}

	bodyTy, bodyEnd, err := c.compileExpr(fnVal.Body, calleeScope, calleeFn, calleeEntry)
	if err != nil {
		return nil, block, err
	}
	types.RegisterReturns(bodyTy, calleeFn)
	bodyEnd.Ret()
	entryID := c.prog.AddFunction(calleeFn)

	args := types.Vars(argTy)
	returns := block.Call(entryID, args, types.Size(bodyTy))
	destTy := types.MapTo(bodyTy, returns)

	// Added after the first direct call: a recursive self-call inside the
	// body above could not find this implementation and compiled its own.
	fnVal.Impls.Add(&types.Implementation{ParamTy: paramTy, ReturnTy: bodyTy, Entry: entryID})

	return destTy, block, nil
}

func (c *compiler) compileIf(n *ast.If, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	condTy, block, err := c.compileExpr(n.Cond, sc, fn, block)
	if err != nil {
		return nil, block, err
	}
	cond, ok := condTy.(*types.Bool)
	if !ok {
		start, end := n.Cond.Span()
		return nil, block, newError(start, end, TypeError, "if condition must be Bool")
	}

	condBlock := fn.NewBlock()
	exitBlock := fn.NewBlock()
	block.ConditionalBranch(cond.Var, condBlock, exitBlock)

	concTy, concEnd, err := c.compileExpr(n.Conc, sc, fn, condBlock)
	if err != nil {
		return nil, concEnd, err
	}
	concEnd.Branch(exitBlock)

	return &types.Maybe{Tag: cond.Var, Inner: concTy}, exitBlock, nil
}

// compileElse implements the "else" merge: the left operand must be a Maybe
// (the result of an else-less if); the right is compiled as the alternative
// and merged component-wise with the Maybe's inner type.
func (c *compiler) compileElse(n *ast.Binary, sc *scope.Scope, fn *ir.Function, block *ir.Block) (types.Type, *ir.Block, error) {
	leftTy, block, err := c.compileExpr(n.Left, sc, fn, block)
	if err != nil {
		return nil, block, err
	}
	maybe, ok := leftTy.(*types.Maybe)
	if !ok {
		start, end := n.Left.Span()
		return nil, block, newError(start, end, TypeError, "else requires an if without else on the left")
	}

	condBlock := fn.NewBlock()
	exitBlock := fn.NewBlock()
	// Inverted arms: the Maybe already holds a value when its tag is true,
	// so the true arm skips straight to the exit block.
	block.ConditionalBranch(maybe.Tag, exitBlock, condBlock)

	altTy, altEnd, err := c.compileExpr(n.Right, sc, fn, condBlock)
	if err != nil {
		return nil, altEnd, err
	}
	altEnd.Branch(exitBlock)

	merged, err := types.Merge(maybe.Tag, maybe.Inner, altTy, exitBlock)
	if err != nil {
		return nil, exitBlock, newError(n.Start, n.End, TypeError, "else branches have incompatible shapes")
	}
	return merged, exitBlock, nil
}

// bindPattern pattern-matches pattern against t, binding names into sc.
// Only Ident and Tuple patterns are supported.
func bindPattern(pattern ast.Expr, t types.Type, sc *scope.Scope) error {
	switch p := pattern.(type) {
	case *ast.Ident:
		sc.Assign(p.Lexeme, t)
		return nil
	case *ast.Tuple:
		tup, ok := t.(*types.Tuple)
		if !ok || len(tup.Elems) != len(p.Exprs) {
			start, end := pattern.Span()
			return newError(start, end, TypeError, "pattern arity mismatch")
		}
		for i, sub := range p.Exprs {
			if err := bindPattern(sub, tup.Elems[i], sc); err != nil {
				return err
			}
		}
		return nil
	default:
		start, end := pattern.Span()
		return newError(start, end, TypeError, "unsupported pattern form")
	}
}
