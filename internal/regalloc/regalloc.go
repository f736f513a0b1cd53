// Package regalloc implements rill's liveness analysis and interference-graph
// construction: a forward use-counting pass followed by a forward
// interference sweep, both walking a function's blocks in increasing
// BlockID order. Colouring the resulting graph is out of scope.
package regalloc

import (
	"fmt"
	"strings"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"

	"github.com/rill-lang/rill/internal/ir"
)

// Graph is the interference graph produced by Build: an adjacency set from
// each variable to every variable simultaneously live with it at some point
// in the function.
type Graph struct {
	adjacency map[ir.Var]*swiss.Map[ir.Var, struct{}]
}

func newGraph() *Graph {
	return &Graph{adjacency: make(map[ir.Var]*swiss.Map[ir.Var, struct{}])}
}

func (g *Graph) set(v ir.Var) *swiss.Map[ir.Var, struct{}] {
	m, ok := g.adjacency[v]
	if !ok {
		m = swiss.NewMap[ir.Var, struct{}](0)
		g.adjacency[v] = m
	}
	return m
}

func (g *Graph) addEdge(a, b ir.Var) {
	if a == b {
		return
	}
	g.set(a).Put(b, struct{}{})
	g.set(b).Put(a, struct{}{})
}

// Neighbors returns, in ascending order, the variables that interfere with
// v. It is empty if v never appeared as a definition during the sweep.
func (g *Graph) Neighbors(v ir.Var) []ir.Var {
	m, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	out := make([]ir.Var, 0, m.Count())
	m.Iter(func(k ir.Var, _ struct{}) bool {
		out = append(out, k)
		return false
	})
	slices.Sort(out)
	return out
}

// Vars returns every variable present in the graph, in ascending order.
func (g *Graph) Vars() []ir.Var {
	out := make([]ir.Var, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// String renders one line per variable: "r0: r1, r2" listing its
// interfering neighbors in ascending order. This textual form is what the
// driver's alloc subcommand prints.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, v := range g.Vars() {
		fmt.Fprintf(&sb, "r%d:", v)
		for i, n := range g.Neighbors(v) {
			if i > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, " r%d", n)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// UseCounts computes, for each variable referenced anywhere in fn, the total
// number of static uses: both operands of AddInt, all three operands of
// Phi, every argument of a Call, and the condition of a ConditionalBranch.
// Each return variable contributes one additional use.
func UseCounts(fn *ir.Function) map[ir.Var]int {
	counts := make(map[ir.Var]int)
	use := func(v ir.Var) { counts[v]++ }

	for _, b := range fn.Blocks {
		for _, insn := range b.Insns {
			switch in := insn.(type) {
			case *ir.AddInt:
				use(in.A)
				use(in.B)
			case *ir.ConstantInt:
			case *ir.Phi:
				use(in.Cond)
				use(in.A)
				use(in.B)
			case *ir.Call:
				for _, a := range in.Args {
					use(a)
				}
			default:
				panic(fmt.Sprintf("regalloc: unknown instruction %T", insn))
			}
		}
		if cb, ok := b.Exit.(*ir.ConditionalBranch); ok {
			use(cb.Cond)
		}
	}
	for _, r := range fn.Returns {
		use(r)
	}
	return counts
}

// Build runs the liveness sweep over fn and returns its interference graph.
// Blocks are walked in increasing BlockID order: the language has no loop
// construct, so every function's control-flow graph is acyclic, and block
// ids are allocated in the order blocks are opened during compilation,
// which is already a valid dominance-respecting traversal.
//
// Only instruction destinations count as defining events: a parameter that
// is only ever read never interferes with anything in the resulting graph.
func Build(fn *ir.Function) *Graph {
	g := newGraph()
	remaining := UseCounts(fn)
	live := swiss.NewMap[ir.Var, struct{}](0)

	def := func(v ir.Var) {
		live.Iter(func(other ir.Var, _ struct{}) bool {
			g.addEdge(v, other)
			return false
		})
		live.Put(v, struct{}{})
	}
	use := func(v ir.Var) {
		remaining[v]--
		if remaining[v] <= 0 {
			live.Delete(v)
		}
	}

	for _, b := range fn.Blocks {
		for _, insn := range b.Insns {
			switch in := insn.(type) {
			case *ir.AddInt:
				def(in.Dest)
				use(in.A)
				use(in.B)
			case *ir.ConstantInt:
				def(in.Dest)
			case *ir.Phi:
				def(in.Dest)
				use(in.Cond)
				use(in.A)
				use(in.B)
			case *ir.Call:
				for _, a := range in.Args {
					use(a)
				}
				for _, r := range in.Returns {
					def(r)
				}
			default:
				panic(fmt.Sprintf("regalloc: unknown instruction %T", insn))
			}
		}
		if cb, ok := b.Exit.(*ir.ConditionalBranch); ok {
			use(cb.Cond)
		}
	}
	for _, r := range fn.Returns {
		use(r)
	}
	return g
}
