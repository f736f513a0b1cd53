package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints an AST as an indented tree, one node per line: a
// depth-first Walk over the node, printing each node's Format label prefixed
// by ". "-per-depth indentation and, optionally, its source span.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// WithPos prints each node's "line:col-line:col" span before its label.
	WithPos bool
}

// Print walks n and writes its indented tree form to p.Output.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, withPos: p.WithPos}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	withPos bool
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}
	prefix := strings.Repeat(". ", indent)
	if p.withPos {
		start, end := n.Span()
		_, p.err = fmt.Fprintf(p.w, "%s[%d:%d-%d:%d] %v\n",
			prefix, start.Line(), start.Col(), end.Line(), end.Col(), n)
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%v\n", prefix, n)
}
