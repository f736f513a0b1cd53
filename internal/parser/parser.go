// Package parser implements a hand-written, precedence-climbing recursive
// descent parser over internal/source positions directly: there is no
// separate token stream. The grammar has four precedence levels, loosest to
// tightest: Top (a bare sequence of `;`-separated expressions), Block,
// Tuple, Bottom.
package parser

import (
	"unicode"

	"github.com/rill-lang/rill/internal/ast"
	"github.com/rill-lang/rill/internal/source"
)

type level int

const (
	levelTop level = iota
	levelBlock
	levelTuple
	levelBottom
)

// Parse parses an entire source string as a single top-level expression.
// Input left over after the expression is an error: there is no valid way
// to continue a complete top-level expression.
func Parse(src string) (ast.Expr, error) {
	expr, err := parseExpr(source.New(src), levelTop)
	if err != nil {
		return nil, err
	}
	_, end := expr.Span()
	if rest := skipSpaces(end); len(rest.Rest()) > 0 {
		return nil, errExpectedValue(rest)
	}
	return expr, nil
}

func skipSpaces(p source.Pos) source.Pos {
	return p.NextWhile(unicode.IsSpace)
}

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// matchKeyword reports whether the identifier run starting at pos is
// exactly kw, returning the position just past it if so.
func matchKeyword(pos source.Pos, kw string) (source.Pos, bool) {
	_, r, ok := pos.Next()
	if !ok || !unicode.IsLetter(r) {
		return source.Pos{}, false
	}
	end := pos.NextWhile(isAlphaNumeric)
	if source.Slice(pos, end) != kw {
		return source.Pos{}, false
	}
	return end, true
}

func parseExpr(start source.Pos, lvl level) (ast.Expr, error) {
	left, err := parsePrimary(start, lvl)
	if err != nil {
		return nil, err
	}
	return parseInfix(left, lvl)
}

func parsePrimary(start source.Pos, lvl level) (ast.Expr, error) {
	pos, r, ok := start.Next()
	if !ok {
		return nil, errExpectedValue(start)
	}

	switch {
	case unicode.IsDigit(r):
		end := pos.NextWhile(unicode.IsDigit)
		return &ast.IntLit{Start: start, End: end, Lexeme: source.Slice(start, end)}, nil

	case r == '(':
		inner, err := parseExpr(skipSpaces(pos), levelBlock)
		if err != nil {
			return nil, err
		}
		_, innerEnd := inner.Span()
		afterSp := skipSpaces(innerEnd)
		next, r2, ok2 := afterSp.Next()
		if !ok2 || r2 != ')' {
			return nil, errExpectedString(afterSp, ")")
		}
		// The node's span grows to cover the parentheses so the infix loop
		// resumes past the closing one.
		return withSpan(inner, start, next), nil

	case r == '{':
		inner, end, err := parseBraceBlock(start)
		if err != nil {
			return nil, err
		}
		return withSpan(inner, start, end), nil

	case unicode.IsLetter(r):
		end := pos.NextWhile(isAlphaNumeric)
		lexeme := source.Slice(start, end)
		switch lexeme {
		case "fn":
			return parseFunc(start, end, lvl)
		case "if":
			return parseIf(start, end, lvl)
		case "true":
			return &ast.BoolLit{Start: start, End: end, Lexeme: lexeme, Value: true}, nil
		case "false":
			return &ast.BoolLit{Start: start, End: end, Lexeme: lexeme, Value: false}, nil
		default:
			return &ast.Ident{Start: start, End: end, Lexeme: lexeme}, nil
		}

	default:
		return nil, errExpectedValue(start)
	}
}

func parseFunc(start, afterFn source.Pos, lvl level) (ast.Expr, error) {
	namePos := skipSpaces(afterFn)
	var name *string
	patternStart := namePos
	if _, r, ok := namePos.Next(); ok && unicode.IsLetter(r) {
		end := namePos.NextWhile(isAlphaNumeric)
		s := source.Slice(namePos, end)
		name = &s
		patternStart = end
	}
	patternStart = skipSpaces(patternStart)
	if _, r, ok := patternStart.Next(); !ok || r != '(' {
		return nil, errExpectedString(patternStart, "(")
	}

	pattern, err := parseExpr(patternStart, lvl)
	if err != nil {
		return nil, err
	}
	_, patternEnd := pattern.Span()
	body, bodyEnd, err := parseBraceBlock(skipSpaces(patternEnd))
	if err != nil {
		return nil, err
	}
	return &ast.Func{Start: start, End: bodyEnd, Name: name, Pattern: pattern, Body: body}, nil
}

func parseIf(start, afterIf source.Pos, lvl level) (ast.Expr, error) {
	cond, err := parseExpr(skipSpaces(afterIf), lvl)
	if err != nil {
		return nil, err
	}
	_, condEnd := cond.Span()
	conc, concEnd, err := parseBraceBlock(skipSpaces(condEnd))
	if err != nil {
		return nil, err
	}
	return &ast.If{Start: start, End: concEnd, Cond: cond, Conc: conc}, nil
}

// parseBraceBlock parses "{ expr }", returning the expression inside (which
// may itself be an *ast.Block if the content contains ';' separators) and
// the position just past the closing brace.
func parseBraceBlock(start source.Pos) (ast.Expr, source.Pos, error) {
	pos, r, ok := start.Next()
	if !ok || r != '{' {
		return nil, source.Pos{}, errExpectedString(start, "{")
	}
	inner, err := parseExpr(skipSpaces(pos), levelTop)
	if err != nil {
		return nil, source.Pos{}, err
	}
	_, innerEnd := inner.Span()
	afterSp := skipSpaces(innerEnd)
	next, r2, ok2 := afterSp.Next()
	if !ok2 || r2 != '}' {
		return nil, source.Pos{}, errExpectedString(afterSp, "}")
	}
	return inner, next, nil
}

func parseInfix(left ast.Expr, lvl level) (ast.Expr, error) {
	for {
		_, leftEnd := left.Span()
		pos := skipSpaces(leftEnd)
		next, r, ok := pos.Next()
		if !ok {
			return left, nil
		}

		switch {
		case r == ';' && lvl < levelBlock:
			rhs, err := parseExpr(skipSpaces(next), levelBlock)
			if err != nil {
				// A trailing, incomplete continuation does not abort the
				// parse: the delimiter that required this expression (a
				// closing brace or paren further up) reports the real
				// error at the position where the continuation was left.
				return left, nil
			}
			left = foldBlock(left, rhs)

		case r == ',' && lvl < levelTuple:
			rhs, err := parseExpr(skipSpaces(next), levelTuple)
			if err != nil {
				return left, nil
			}
			left = foldTuple(left, rhs)

		case r == '=' && lvl < levelBottom:
			// The right operand parses one level looser than '=' itself so
			// that chains fold to the right: a = b = c is a = (b = c).
			rhs, err := parseExpr(skipSpaces(next), levelTuple)
			if err != nil {
				return left, nil
			}
			left = newBinary(left, rhs, ast.SingleEquals)

		case r == '+' && lvl < levelBottom:
			rhs, err := parseExpr(skipSpaces(next), levelBottom)
			if err != nil {
				return left, nil
			}
			left = newBinary(left, rhs, ast.Plus)

		case r == '(':
			// Application is the tightest operator and binds at every level,
			// so a call stays inside a Bottom operand: g(3) + g(4) is a sum
			// of two calls, not a call on a sum.
			rhs, err := parsePrimary(pos, levelBottom)
			if err != nil {
				return left, nil
			}
			left = newBinary(left, rhs, ast.Bracket)

		default:
			if end, ok := matchKeyword(pos, "else"); ok && lvl < levelBottom {
				alt, altEnd, err := parseBraceBlock(skipSpaces(end))
				if err != nil {
					return nil, err
				}
				start, _ := left.Span()
				left = &ast.Binary{Start: start, End: altEnd, Left: left, Right: alt, Op: ast.Else}
				continue
			}
			return left, nil
		}
	}
}

// withSpan widens e's recorded span to [start, end), covering delimiters
// that sit outside the node itself.
func withSpan(e ast.Expr, start, end source.Pos) ast.Expr {
	switch n := e.(type) {
	case *ast.IntLit:
		n.Start, n.End = start, end
	case *ast.BoolLit:
		n.Start, n.End = start, end
	case *ast.Ident:
		n.Start, n.End = start, end
	case *ast.Tuple:
		n.Start, n.End = start, end
	case *ast.Block:
		n.Start, n.End = start, end
	case *ast.Func:
		n.Start, n.End = start, end
	case *ast.Binary:
		n.Start, n.End = start, end
	case *ast.If:
		n.Start, n.End = start, end
	}
	return e
}

func newBinary(left, right ast.Expr, op ast.BinaryOp) ast.Expr {
	start, _ := left.Span()
	_, end := right.Span()
	return &ast.Binary{Start: start, End: end, Left: left, Right: right, Op: op}
}

func foldTuple(left, right ast.Expr) ast.Expr {
	start, _ := left.Span()
	_, end := right.Span()
	if t, ok := left.(*ast.Tuple); ok {
		t.Exprs = append(t.Exprs, right)
		t.End = end
		return t
	}
	return &ast.Tuple{Start: start, End: end, Exprs: []ast.Expr{left, right}}
}

func foldBlock(left, right ast.Expr) ast.Expr {
	start, _ := left.Span()
	_, end := right.Span()
	if b, ok := left.(*ast.Block); ok {
		b.Exprs = append(b.Exprs, b.Last)
		b.Last = right
		b.End = end
		return b
	}
	return &ast.Block{Start: start, End: end, Exprs: []ast.Expr{left}, Last: right}
}
