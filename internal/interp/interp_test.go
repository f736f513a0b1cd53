package interp_test

import (
	"testing"

	"github.com/rill-lang/rill/internal/compiler"
	"github.com/rill-lang/rill/internal/interp"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	prog, ty, err := compiler.CompileProgram(src)
	require.NoError(t, err)
	regFile := interp.RunProgram(prog)
	return interp.FormatValue(ty, regFile)
}

func TestEndToEndIntAddition(t *testing.T) {
	require.Equal(t, "3", runSource(t, "1 + 2"))
}

func TestEndToEndAssignmentAndReuse(t *testing.T) {
	require.Equal(t, "10", runSource(t, "{ x = 5; x + x }"))
}

func TestEndToEndFunctionCall(t *testing.T) {
	require.Equal(t, "42", runSource(t, "{ f = fn(x) { x + 1 }; f(41) }"))
}

func TestEndToEndTupleConcat(t *testing.T) {
	require.Equal(t, "12", runSource(t, "{ p = (1, 2); p }"))
}

func TestEndToEndIfTrueBranch(t *testing.T) {
	require.Equal(t, "7", runSource(t, "if true { 7 } else { 9 }"))
}

func TestEndToEndIfFalseBranch(t *testing.T) {
	require.Equal(t, "9", runSource(t, "if false { 7 } else { 9 }"))
}

func TestEndToEndSharedImplementationReused(t *testing.T) {
	require.Equal(t, "14", runSource(t, "{ g = fn(x) { x + x }; g(3) + g(4) }"))
}

func TestEndToEndIfWithoutElseSome(t *testing.T) {
	require.Equal(t, "some(7)", runSource(t, "if true { 7 }"))
}

func TestEndToEndIfWithoutElseNone(t *testing.T) {
	require.Equal(t, "none", runSource(t, "if false { 7 }"))
}
