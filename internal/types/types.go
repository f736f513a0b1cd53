// Package types implements the structural type lattice that drives rill's
// monomorphisation: Int, Bool, Maybe, Tuple and Func, each carrying the IR
// variables that hold its runtime value. Types compare equal by shape only,
// ignoring the identity of the variables they carry; this is the key the
// compiler uses to decide whether a call site needs a new specialisation.
package types

import (
	"github.com/rill-lang/rill/internal/ast"
	"github.com/rill-lang/rill/internal/ir"
)

// Type is one member of the lattice: *Int, *Bool, *Maybe, *Tuple or *Func.
type Type interface {
	isType()
}

// Int is a runtime integer held in Var.
type Int struct{ Var ir.Var }

// Bool is a runtime Boolean (0/1) held in Var.
type Bool struct{ Var ir.Var }

// Maybe is the result of an else-less if: when Tag is non-zero, Inner is
// live; otherwise it is absent.
type Maybe struct {
	Tag   ir.Var
	Inner Type
}

// Tuple is a product of types, in declared order.
type Tuple struct{ Elems []Type }

// Func is a first-class function value: its AST pattern and body, plus a
// shared, interior-mutable list of already-compiled implementations. Two
// Func values sharing the same Impls pointer observe each other's
// monomorphisations. Name is nil for an anonymous literal; when present it
// is the sole binding the compiler re-introduces into the fresh scope used
// to compile a monomorphisation, so that a named function can resolve
// itself for recursive calls. Self-reference is the one exception to "no
// closures".
type Func struct {
	Pattern ast.Expr
	Body    ast.Expr
	Impls   *ImplList
	Name    *string
}

func (*Int) isType()   {}
func (*Bool) isType()  {}
func (*Maybe) isType() {}
func (*Tuple) isType() {}
func (*Func) isType()  {}
