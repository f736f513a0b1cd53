package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/rill-lang/rill/internal/ast"
	"github.com/rill-lang/rill/internal/compiler"
	"github.com/rill-lang/rill/internal/diag"
	"github.com/rill-lang/rill/internal/interp"
	"github.com/rill-lang/rill/internal/parser"
)

// Run implements the "run" subcommand: print the AST, print the IR, then
// interpret the program and print its formatted top-level result.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFile(stdio, sourcePath(args))
}

// RunFile reads path, compiles it, and runs the whole pipeline against
// stdio.
func RunFile(stdio mainer.Stdio, path string) error {
	src, err := readSource(stdio, path)
	if err != nil {
		return err
	}

	if err := printAST(stdio, path, src); err != nil {
		return err
	}

	prog, ty, err := compiler.CompileProgram(src)
	if err != nil {
		diag.Report(stdio.Stderr, path, src, err)
		return err
	}
	fmt.Fprint(stdio.Stdout, prog.String())

	regFile := interp.RunProgram(prog)
	fmt.Fprintln(stdio.Stdout, interp.FormatValue(ty, regFile))
	return nil
}

func readSource(stdio mainer.Stdio, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return "", err
	}
	return string(data), nil
}

// printAST re-parses src (parsing is cheap relative to compiling) purely to
// print its tree form ahead of the IR; a parse error here is reported and
// also aborts the run.
func printAST(stdio mainer.Stdio, path, src string) error {
	expr, err := parser.Parse(src)
	if err != nil {
		diag.Report(stdio.Stderr, path, src, err)
		return err
	}
	p := ast.Printer{Output: stdio.Stdout}
	return p.Print(expr)
}
