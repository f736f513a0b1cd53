package types

import "github.com/rill-lang/rill/internal/ir"

// Implementation records one specialisation of a Func: the parameter shape
// it was compiled for, the shape it returns, and the monomorphised
// function's id.
type Implementation struct {
	ParamTy  Type
	ReturnTy Type
	Entry    ir.FunctionID
}

// ImplList is the shared, interior-mutable cell backing Func.Impls. It is
// never pruned: every monomorphisation of a function appends to it, and the
// append is observable from every copy of the Func value that shares this
// cell. In a single-threaded compiler the "is this shape already present?"
// scan and the "append a new one" step are never interleaved, so no locking
// is required.
type ImplList struct {
	items []*Implementation
}

// NewImplList returns a fresh, empty cell.
func NewImplList() *ImplList {
	return &ImplList{}
}

// Find returns the implementation whose ParamTy is structurally equal to
// paramTy, if one has already been compiled.
func (l *ImplList) Find(paramTy Type) (*Implementation, bool) {
	for _, impl := range l.items {
		if Equals(impl.ParamTy, paramTy) {
			return impl, true
		}
	}
	return nil, false
}

// Add appends impl to the list. It must be called only after the
// implementation's body has been compiled, which is why a direct recursive
// self-call compiles a second specialisation rather than reusing the one
// being built: a known limitation of this design, not a bug.
func (l *ImplList) Add(impl *Implementation) {
	l.items = append(l.items, impl)
}

// Len reports how many implementations have been compiled so far.
func (l *ImplList) Len() int { return len(l.items) }
