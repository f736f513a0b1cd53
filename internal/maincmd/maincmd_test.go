package maincmd_test

import (
	"bytes"
	"flag"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/rill-lang/rill/internal/goldentest"
	"github.com/rill-lang/rill/internal/maincmd"
)

var update = flag.Bool("test.update-run-tests", false, "If set, updates the run golden files.")

// TestRunGolden drives maincmd.RunFile over testdata/run/*.rill and compares
// the combined AST+IR+result output against each file's .want golden.
func TestRunGolden(t *testing.T) {
	const dir = "../../testdata/run"
	for _, fi := range goldentest.SourceFiles(t, dir, ".rill") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			var out bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
			err := maincmd.RunFile(stdio, dir+"/"+fi.Name())
			require.NoError(t, err)
			goldentest.DiffOutput(t, fi, out.String(), dir, update)
		})
	}
}

// TestRunFunctionCall exercises a function literal, a call and
// monomorphisation without pinning the full AST/IR text to a golden file.
func TestRunFunctionCall(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	require.NoError(t, maincmd.RunFile(stdio, "../../testdata/run/scenario3.rill"))
	require.Contains(t, out.String(), "call f1")
	require.Contains(t, out.String(), "\n42\n")
}

// TestRunIfElseTrue and TestRunIfElseFalse: the Maybe merge always compiles
// the same five-block shape, but execution follows a different path through
// it depending on the condition's value.
func TestRunIfElseTrue(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	require.NoError(t, maincmd.RunFile(stdio, "../../testdata/run/scenario5.rill"))
	require.Contains(t, out.String(), "phi(r0, r1, r2)")
	require.Contains(t, out.String(), "\n7\n")
}

func TestRunIfElseFalse(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	require.NoError(t, maincmd.RunFile(stdio, "../../testdata/run/scenario6.rill"))
	require.Contains(t, out.String(), "phi(r0, r1, r2)")
	require.Contains(t, out.String(), "\n9\n")
}

// TestRunSharedImplementation: two calls to the same function literal at
// the same argument shape reuse one monomorphised implementation instead of
// compiling two.
func TestRunSharedImplementation(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	require.NoError(t, maincmd.RunFile(stdio, "../../testdata/run/scenario7.rill"))
	require.Contains(t, out.String(), "call f1 (r0)")
	require.Contains(t, out.String(), "call f1 (r2)")
	require.NotContains(t, out.String(), "f2")
	require.Contains(t, out.String(), "\n14\n")
}

func TestRunParseErrorReportsExpectedCloseParen(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	err := maincmd.RunFile(stdio, "../../testdata/error_unclosed_paren.rill")
	require.Error(t, err)
	require.Contains(t, out.String(), `expected ")"`)
}

func TestRunTypeErrorReportsPlusSpan(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	err := maincmd.RunFile(stdio, "../../testdata/error_type_mismatch.rill")
	require.Error(t, err)
	require.Contains(t, out.String(), "TypeError")
	require.Contains(t, out.String(), "+ requires two Int operands")
}

func TestAllocPrintsInterferenceGraphPerFunction(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &out}
	require.NoError(t, maincmd.AllocFile(stdio, "../../testdata/run/scenario7.rill"))
	require.Contains(t, out.String(), "f0:")
	require.Contains(t, out.String(), "f1:")
}
