package types

import (
	"errors"

	"github.com/rill-lang/rill/internal/ir"
)

// ErrShapeMismatch is returned by Merge when its two operands have
// different shapes; the compiler surfaces this as a TypeError.
var ErrShapeMismatch = errors.New("types: shape mismatch")

// Size is the number of runtime variables the type carries: functions are
// compile-time only and carry none.
func Size(t Type) int {
	switch v := t.(type) {
	case *Int:
		return 1
	case *Bool:
		return 1
	case *Maybe:
		return 1 + Size(v.Inner)
	case *Tuple:
		n := 0
		for _, e := range v.Elems {
			n += Size(e)
		}
		return n
	case *Func:
		return 0
	default:
		panic("types: unknown type")
	}
}

// Vars linearises the variables t carries, pre-order.
func Vars(t Type) []ir.Var {
	switch v := t.(type) {
	case *Int:
		return []ir.Var{v.Var}
	case *Bool:
		return []ir.Var{v.Var}
	case *Maybe:
		return append([]ir.Var{v.Tag}, Vars(v.Inner)...)
	case *Tuple:
		var out []ir.Var
		for _, e := range v.Elems {
			out = append(out, Vars(e)...)
		}
		return out
	case *Func:
		return nil
	default:
		panic("types: unknown type")
	}
}

// Equals reports structural shape equality, ignoring the identity of the
// variables carried by t and u. Two Func types are always shape-equal to
// each other: Func carries no vars, and the monomorphisation key is about
// argument shape, never about which function value is being compared.
func Equals(t, u Type) bool {
	switch a := t.(type) {
	case *Int:
		_, ok := u.(*Int)
		return ok
	case *Bool:
		_, ok := u.(*Bool)
		return ok
	case *Maybe:
		b, ok := u.(*Maybe)
		return ok && Equals(a.Inner, b.Inner)
	case *Tuple:
		b, ok := u.(*Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equals(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case *Func:
		_, ok := u.(*Func)
		return ok
	default:
		return false
	}
}

// MapTo returns a type of the same shape as t whose carried variables are
// the prefix of vs (len(vs) must be at least Size(t)), assigned pre-order.
// It is used to rename into parameter names when monomorphising and into
// fresh destinations when returning from a call.
func MapTo(t Type, vs []ir.Var) Type {
	i := 0
	var walk func(Type) Type
	walk = func(t Type) Type {
		switch v := t.(type) {
		case *Int:
			r := &Int{Var: vs[i]}
			i++
			return r
		case *Bool:
			r := &Bool{Var: vs[i]}
			i++
			return r
		case *Maybe:
			tag := vs[i]
			i++
			return &Maybe{Tag: tag, Inner: walk(v.Inner)}
		case *Tuple:
			elems := make([]Type, len(v.Elems))
			for j, e := range v.Elems {
				elems[j] = walk(e)
			}
			return &Tuple{Elems: elems}
		case *Func:
			return v
		default:
			panic("types: unknown type")
		}
	}
	return walk(t)
}

// AsParameter returns a type of the same shape as t whose variables are
// freshly allocated parameters of fn, recorded as fn's parameters in order.
func AsParameter(t Type, fn *ir.Function) Type {
	var walk func(Type) Type
	walk = func(t Type) Type {
		switch v := t.(type) {
		case *Int:
			return &Int{Var: fn.NewParam()}
		case *Bool:
			return &Bool{Var: fn.NewParam()}
		case *Maybe:
			tag := fn.NewParam()
			return &Maybe{Tag: tag, Inner: walk(v.Inner)}
		case *Tuple:
			elems := make([]Type, len(v.Elems))
			for j, e := range v.Elems {
				elems[j] = walk(e)
			}
			return &Tuple{Elems: elems}
		case *Func:
			return v
		default:
			panic("types: unknown type")
		}
	}
	return walk(t)
}

// RegisterReturns registers Vars(t) as fn's return variables, in order.
func RegisterReturns(t Type, fn *ir.Function) {
	for _, v := range Vars(t) {
		fn.AddReturn(v)
	}
}

// Merge emits component-wise Phi selects for two types of equal shape,
// given a Boolean cond that dominates the split, and returns a type whose
// carried variables name the merges. Merging types of different shape is
// an error.
func Merge(cond ir.Var, a, b Type, block *ir.Block) (Type, error) {
	switch av := a.(type) {
	case *Int:
		bv, ok := b.(*Int)
		if !ok {
			return nil, ErrShapeMismatch
		}
		return &Int{Var: block.PhiSelect(cond, av.Var, bv.Var)}, nil
	case *Bool:
		bv, ok := b.(*Bool)
		if !ok {
			return nil, ErrShapeMismatch
		}
		return &Bool{Var: block.PhiSelect(cond, av.Var, bv.Var)}, nil
	case *Maybe:
		bv, ok := b.(*Maybe)
		if !ok {
			return nil, ErrShapeMismatch
		}
		tag := block.PhiSelect(cond, av.Tag, bv.Tag)
		inner, err := Merge(cond, av.Inner, bv.Inner, block)
		if err != nil {
			return nil, err
		}
		return &Maybe{Tag: tag, Inner: inner}, nil
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return nil, ErrShapeMismatch
		}
		elems := make([]Type, len(av.Elems))
		for i := range av.Elems {
			m, err := Merge(cond, av.Elems[i], bv.Elems[i], block)
			if err != nil {
				return nil, err
			}
			elems[i] = m
		}
		return &Tuple{Elems: elems}, nil
	default:
		// Func carries no variables and has no sensible merge.
		return nil, ErrShapeMismatch
	}
}
