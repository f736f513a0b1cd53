package ast

import (
	"fmt"

	"github.com/rill-lang/rill/internal/source"
)

type (
	// IntLit is a run of digits, e.g. "41".
	IntLit struct {
		Start, End source.Pos
		Lexeme     string
	}

	// BoolLit is the reserved word "true" or "false".
	BoolLit struct {
		Start, End source.Pos
		Lexeme     string
		Value      bool
	}

	// Ident is an identifier: alpha then alphanumerics.
	Ident struct {
		Start, End source.Pos
		Lexeme     string
	}

	// Tuple is a flattened, left-to-right sequence of comma-separated
	// expressions, e.g. "1, 2, 3".
	Tuple struct {
		Start, End source.Pos
		Exprs      []Expr
	}

	// Block is a brace-delimited sequence of `;`-separated expressions. Exprs
	// holds every expression but the last, whose effects on scope matter but
	// whose value is discarded; Last is always present.
	Block struct {
		Start, End source.Pos
		Exprs      []Expr
		Last       Expr
	}

	// Func is a function literal: "fn [name] (pattern) body". Name is nil for
	// an anonymous literal.
	Func struct {
		Start, End source.Pos
		Name       *string
		Pattern    Expr
		Body       Expr
	}

	// Binary is a two-operand form; see BinaryOp for the four variants.
	Binary struct {
		Start, End source.Pos
		Left, Right Expr
		Op          BinaryOp
	}

	// If is an else-less conditional: "if cond conc".
	If struct {
		Start, End source.Pos
		Cond, Conc Expr
	}
)

func (*IntLit) expr() {}
func (*BoolLit) expr() {}
func (*Ident) expr() {}
func (*Tuple) expr() {}
func (*Block) expr() {}
func (*Func) expr() {}
func (*Binary) expr() {}
func (*If) expr() {}

func (n *IntLit) Span() (source.Pos, source.Pos)  { return n.Start, n.End }
func (n *BoolLit) Span() (source.Pos, source.Pos) { return n.Start, n.End }
func (n *Ident) Span() (source.Pos, source.Pos)   { return n.Start, n.End }
func (n *Tuple) Span() (source.Pos, source.Pos)   { return n.Start, n.End }
func (n *Block) Span() (source.Pos, source.Pos)   { return n.Start, n.End }
func (n *Func) Span() (source.Pos, source.Pos)    { return n.Start, n.End }
func (n *Binary) Span() (source.Pos, source.Pos)  { return n.Start, n.End }
func (n *If) Span() (source.Pos, source.Pos)      { return n.Start, n.End }

func (n *IntLit) Walk(v Visitor)  {}
func (n *BoolLit) Walk(v Visitor) {}
func (n *Ident) Walk(v Visitor)   {}
func (n *Tuple) Walk(v Visitor) {
	for _, e := range n.Exprs {
		Walk(v, e)
	}
}
func (n *Block) Walk(v Visitor) {
	for _, e := range n.Exprs {
		Walk(v, e)
	}
	Walk(v, n.Last)
}
func (n *Func) Walk(v Visitor) {
	Walk(v, n.Pattern)
	Walk(v, n.Body)
}
func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *If) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Conc)
}

func (n *IntLit) Format(f fmt.State, verb rune) { format(f, verb, n, n.Lexeme, nil) }
func (n *BoolLit) Format(f fmt.State, verb rune) { format(f, verb, n, n.Lexeme, nil) }
func (n *Ident) Format(f fmt.State, verb rune) { format(f, verb, n, n.Lexeme, nil) }
func (n *Tuple) Format(f fmt.State, verb rune) {
	format(f, verb, n, "tuple", map[string]int{"exprs": len(n.Exprs)})
}
func (n *Block) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"exprs": len(n.Exprs)})
}
func (n *Func) Format(f fmt.State, verb rune) {
	name := "fn"
	if n.Name != nil {
		name = "fn " + *n.Name
	}
	format(f, verb, n, name, nil)
}
func (n *Binary) Format(f fmt.State, verb rune) { format(f, verb, n, n.Op.String(), nil) }
func (n *If) Format(f fmt.State, verb rune)     { format(f, verb, n, "if", nil) }
