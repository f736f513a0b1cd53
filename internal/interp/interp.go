// Package interp implements the reference interpreter over rill's IR: a
// per-function register file, straight-line execution of instructions, and
// exits that either return or jump to a named block. It exists to give the
// compiler a testable execution semantics; it is not a backend.
package interp

import (
	"fmt"

	"github.com/rill-lang/rill/internal/ir"
)

// Run executes fn in prog starting at its entry block, with args copied
// into its parameters, and returns the values of its return variables in
// order.
func Run(prog *ir.Program, fn *ir.Function, args []ir.Var, regs []int32) []int32 {
	regFile := make([]int32, fn.NumVars())
	for i, p := range fn.Params {
		regFile[p] = regs[args[i]]
	}
	execute(prog, fn, regFile)

	out := make([]int32, len(fn.Returns))
	for i, r := range fn.Returns {
		out[i] = regFile[r]
	}
	return out
}

// RunProgram executes prog's entry function (function 0) with no arguments
// and returns its register file after execution, for inspecting the
// top-level result's variables directly.
func RunProgram(prog *ir.Program) []int32 {
	fn := prog.Functions[0]
	regFile := make([]int32, fn.NumVars())
	execute(prog, fn, regFile)
	return regFile
}

func execute(prog *ir.Program, fn *ir.Function, regFile []int32) {
	block := fn.Blocks[0]
	for {
		for _, insn := range block.Insns {
			switch in := insn.(type) {
			case *ir.AddInt:
				regFile[in.Dest] = regFile[in.A] + regFile[in.B]
			case *ir.ConstantInt:
				regFile[in.Dest] = in.K
			case *ir.Phi:
				if regFile[in.Cond] != 0 {
					regFile[in.Dest] = regFile[in.A]
				} else {
					regFile[in.Dest] = regFile[in.B]
				}
			case *ir.Call:
				out := Run(prog, prog.Functions[in.Function], in.Args, regFile)
				for i, v := range out {
					regFile[in.Returns[i]] = v
				}
			default:
				panic(fmt.Sprintf("interp: unknown instruction %T", insn))
			}
		}

		switch ex := block.Exit.(type) {
		case *ir.Return:
			return
		case *ir.Branch:
			block = fn.Block(ex.Target)
		case *ir.ConditionalBranch:
			if regFile[ex.Cond] != 0 {
				block = fn.Block(ex.TBlock)
			} else {
				block = fn.Block(ex.FBlock)
			}
		default:
			panic(fmt.Sprintf("interp: unknown exit %T", block.Exit))
		}
	}
}
