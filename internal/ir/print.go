package ir

import (
	"fmt"
	"strings"
)

// String renders the program in the committed external textual form: one
// header per function ("f{n} (r{params}) -> r{returns}"), blocks labelled
// "main:" or "b{n}:", and three-address instructions and exits.
func (p *Program) String() string {
	var sb strings.Builder
	for i, fn := range p.Functions {
		fn.writeTo(&sb, FunctionID(i))
	}
	return sb.String()
}

func (fn *Function) writeTo(sb *strings.Builder, id FunctionID) {
	fmt.Fprintf(sb, "f%d (", id)
	writeVarList(sb, fn.Params)
	sb.WriteString(")")
	if len(fn.Returns) > 0 {
		sb.WriteString(" -> ")
		writeVarList(sb, fn.Returns)
	}
	sb.WriteString("\n")

	for i, b := range fn.Blocks {
		if i == 0 {
			sb.WriteString("    main:\n")
		} else {
			fmt.Fprintf(sb, "    b%d:\n", i)
		}
		for _, insn := range b.Insns {
			sb.WriteString("        ")
			writeInstruction(sb, insn)
		}
		sb.WriteString("        ")
		writeExit(sb, b.Exit)
	}
}

func writeVarList(sb *strings.Builder, vars []Var) {
	for i, v := range vars {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "r%d", v)
	}
}

func writeInstruction(sb *strings.Builder, insn Instruction) {
	switch in := insn.(type) {
	case *AddInt:
		fmt.Fprintf(sb, "r%d = r%d + r%d\n", in.Dest, in.A, in.B)
	case *ConstantInt:
		fmt.Fprintf(sb, "r%d = %d\n", in.Dest, in.K)
	case *Phi:
		fmt.Fprintf(sb, "r%d = phi(r%d, r%d, r%d)\n", in.Dest, in.Cond, in.A, in.B)
	case *Call:
		if len(in.Returns) > 0 {
			writeVarList(sb, in.Returns)
			sb.WriteString(" = ")
		}
		fmt.Fprintf(sb, "call f%d (", in.Function)
		writeVarList(sb, in.Args)
		sb.WriteString(")\n")
	default:
		fmt.Fprintf(sb, "<unknown instruction %T>\n", insn)
	}
}

func writeExit(sb *strings.Builder, exit Exit) {
	switch ex := exit.(type) {
	case *Return:
		sb.WriteString("return\n")
	case *Branch:
		fmt.Fprintf(sb, "goto b%d\n", ex.Target)
	case *ConditionalBranch:
		fmt.Fprintf(sb, "if r%d goto b%d else goto b%d\n", ex.Cond, ex.TBlock, ex.FBlock)
	default:
		sb.WriteString("<no exit>\n")
	}
}
