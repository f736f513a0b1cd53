package types_test

import (
	"testing"

	"github.com/rill-lang/rill/internal/ir"
	"github.com/rill-lang/rill/internal/types"
	"github.com/stretchr/testify/require"
)

func TestSizeAndVarsAgree(t *testing.T) {
	ty := &types.Tuple{Elems: []types.Type{
		&types.Int{Var: 0},
		&types.Maybe{Tag: 1, Inner: &types.Bool{Var: 2}},
	}}
	require.Equal(t, 3, types.Size(ty))
	require.Equal(t, []ir.Var{0, 1, 2}, types.Vars(ty))
}

func TestFuncHasZeroSize(t *testing.T) {
	fn := &types.Func{Impls: types.NewImplList()}
	require.Equal(t, 0, types.Size(fn))
	require.Empty(t, types.Vars(fn))
}

func TestMapToAssignsPreOrder(t *testing.T) {
	ty := &types.Tuple{Elems: []types.Type{
		&types.Int{Var: 0},
		&types.Maybe{Tag: 1, Inner: &types.Bool{Var: 2}},
	}}
	mapped := types.MapTo(ty, []ir.Var{10, 11, 12})
	require.Equal(t, []ir.Var{10, 11, 12}, types.Vars(mapped))
	require.True(t, types.Equals(ty, mapped))
}

func TestAsParameterAllocatesFreshParams(t *testing.T) {
	fn := ir.NewFunction()
	ty := &types.Maybe{Tag: 0, Inner: &types.Int{Var: 0}}
	param := types.AsParameter(ty, fn)
	require.Equal(t, []ir.Var{0, 1}, fn.Params)
	require.Equal(t, []ir.Var{0, 1}, types.Vars(param))
}

func TestRegisterReturnsAppendsInOrder(t *testing.T) {
	fn := ir.NewFunction()
	ty := &types.Tuple{Elems: []types.Type{&types.Int{Var: 5}, &types.Bool{Var: 6}}}
	types.RegisterReturns(ty, fn)
	require.Equal(t, []ir.Var{5, 6}, fn.Returns)
}

func TestEqualsIgnoresVariableIdentity(t *testing.T) {
	a := &types.Int{Var: 0}
	b := &types.Int{Var: 99}
	require.True(t, types.Equals(a, b))
}

func TestEqualsRejectsDifferentShapes(t *testing.T) {
	a := &types.Int{Var: 0}
	b := &types.Bool{Var: 0}
	require.False(t, types.Equals(a, b))

	t1 := &types.Tuple{Elems: []types.Type{&types.Int{Var: 0}}}
	t2 := &types.Tuple{Elems: []types.Type{&types.Int{Var: 0}, &types.Bool{Var: 1}}}
	require.False(t, types.Equals(t1, t2))
}

func TestEqualsTreatsAllFuncsAsEqual(t *testing.T) {
	f1 := &types.Func{Impls: types.NewImplList()}
	f2 := &types.Func{Impls: types.NewImplList()}
	require.True(t, types.Equals(f1, f2))
}

func TestMergeEmitsPhiPerComponent(t *testing.T) {
	fn := ir.NewFunction()
	entry := fn.NewBlock()
	cond := entry.ConstantInt(1)
	a := &types.Tuple{Elems: []types.Type{&types.Int{Var: 0}, &types.Bool{Var: 1}}}
	b := &types.Tuple{Elems: []types.Type{&types.Int{Var: 2}, &types.Bool{Var: 3}}}

	merged, err := types.Merge(cond, a, b, entry)
	require.NoError(t, err)
	require.Len(t, entry.Insns, 3) // constant + 2 phis
	require.True(t, types.Equals(a, merged))
}

func TestMergeRejectsShapeMismatch(t *testing.T) {
	fn := ir.NewFunction()
	entry := fn.NewBlock()
	cond := entry.ConstantInt(1)
	_, err := types.Merge(cond, &types.Int{Var: 0}, &types.Bool{Var: 1}, entry)
	require.ErrorIs(t, err, types.ErrShapeMismatch)
}

func TestImplListFindsByShapeNotIdentity(t *testing.T) {
	impls := types.NewImplList()
	impl := &types.Implementation{
		ParamTy:  &types.Int{Var: 0},
		ReturnTy: &types.Int{Var: 1},
		Entry:    3,
	}
	impls.Add(impl)

	found, ok := impls.Find(&types.Int{Var: 42})
	require.True(t, ok)
	require.Same(t, impl, found)
	require.Equal(t, 1, impls.Len())

	_, ok = impls.Find(&types.Bool{Var: 0})
	require.False(t, ok)
}
