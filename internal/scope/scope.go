// Package scope implements the lexically-chained name → type table the
// compiler threads through its recursive descent over the AST: a singly
// linked chain of frames, shared by pointer so that a Func value's impls
// cell observed through one copy of a scope entry stays identical to the
// one observed through another (see internal/types.ImplList).
package scope

import "github.com/rill-lang/rill/internal/types"

// frame is one binding in the chain; previous is nil at the bottom.
type frame struct {
	name     string
	ty       types.Type
	previous *frame
}

// Scope is a cursor into a chain of frames. The zero value is not usable;
// construct one with New.
type Scope struct {
	top *frame
}

// New returns a fresh, empty scope.
func New() *Scope {
	return &Scope{}
}

// Get looks up name by walking the chain from the top, returning its type
// and true, or nil and false if no frame binds it.
func (s *Scope) Get(name string) (types.Type, bool) {
	for f := s.top; f != nil; f = f.previous {
		if f.name == name {
			return f.ty, true
		}
	}
	return nil, false
}

// Assign walks the chain for an existing binding of name and overwrites it
// in place; if none exists, it pushes a new frame on top of the chain.
func (s *Scope) Assign(name string, t types.Type) {
	for f := s.top; f != nil; f = f.previous {
		if f.name == name {
			f.ty = t
			return
		}
	}
	s.top = &frame{name: name, ty: t, previous: s.top}
}

// Child returns a fresh, empty scope. The language has no closures: a
// function body is compiled against a child of nothing, never against the
// caller's chain, so only the names the compiler binds into it (the pattern
// names and, for a named function, its own name) are visible inside.
func Child() *Scope {
	return New()
}
