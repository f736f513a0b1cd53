// Package ast defines the abstract syntax tree for rill's source language:
// integer and Boolean literals, identifiers, tuples, blocks, function
// literals, binary operators (including application and the Maybe-merging
// "else"), and the else-less "if". Every node carries the source span it was
// parsed from.
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rill-lang/rill/internal/source"
)

// Node is any node in the tree.
type Node interface {
	// Every Node implements fmt.Formatter so it can print a description of
	// itself. Only the 'v' and 's' verbs are supported; width truncates or
	// pads the label ('-' pads right, '+' disables padding), and '#' prints
	// child counts.
	fmt.Formatter

	// Span reports the start and end position of the node.
	Span() (start, end source.Pos)

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr is an expression node. Every node in this AST is an expression; the
// language has no separate statement grammar.
type Expr interface {
	Node
	expr()
}

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor is called for each node participating in a call to Walk. A node's
// children are skipped if Visit returns a nil Visitor.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc implements Visitor for a plain function.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor { return f(n, dir) }

// Walk visits node and its descendants with v.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	node.Walk(v)
	v.Visit(node, VisitExit)
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\r\n", "⏎")
	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus, plus := f.Flag('-'), f.Flag('+')
		runes := []rune(label)
		if len(runes) >= w {
			runes = runes[:w]
		} else if minus {
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		} else if !plus {
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
