package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/rill-lang/rill/internal/compiler"
	"github.com/rill-lang/rill/internal/diag"
	"github.com/rill-lang/rill/internal/ir"
	"github.com/rill-lang/rill/internal/regalloc"
)

// Alloc implements the "alloc" subcommand: print the AST, print the IR,
// then run the register allocator over every function in the compiled
// program and print each one's interference graph.
func (c *Cmd) Alloc(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return AllocFile(stdio, sourcePath(args))
}

// AllocFile reads path, compiles it, and prints its interference graphs.
func AllocFile(stdio mainer.Stdio, path string) error {
	src, err := readSource(stdio, path)
	if err != nil {
		return err
	}

	if err := printAST(stdio, path, src); err != nil {
		return err
	}

	prog, _, err := compiler.CompileProgram(src)
	if err != nil {
		diag.Report(stdio.Stderr, path, src, err)
		return err
	}
	fmt.Fprint(stdio.Stdout, prog.String())

	for i, fn := range prog.Functions {
		fmt.Fprintf(stdio.Stdout, "f%d:\n", ir.FunctionID(i))
		g := regalloc.Build(fn)
		fmt.Fprint(stdio.Stdout, g.String())
	}
	return nil
}
