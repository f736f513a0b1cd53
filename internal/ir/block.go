package ir

// Block is an ordered sequence of straight-line instructions followed by a
// distinguished exit. A block is mutated in place while open (Exit == nil);
// once committed by one of the terminator methods it is immutable: no
// instruction may be appended after commit, and committing twice panics.
//
// Go's pointer semantics make the "clone, commit, advance" protocol the
// compiler's per-node contracts describe a direct mutation rather than a
// literal clone: NewBlock registers the slot up front and returns a pointer
// to it, so installing the exit and advancing the caller's cursor to a
// successor block prepared earlier are two separate, ordinary statements
// rather than a value move.
type Block struct {
	fn    *Function
	id    BlockID
	Insns []Instruction
	Exit  Exit
}

// ID returns the block's id within its function.
func (b *Block) ID() BlockID { return b.id }

func (b *Block) append(insn Instruction) {
	if b.Exit != nil {
		panic("ir: instruction appended to a committed block")
	}
	b.Insns = append(b.Insns, insn)
}

// AddInt emits an integer addition and returns its destination.
func (b *Block) AddInt(a, c Var) Var {
	dest := b.fn.newVar()
	b.append(&AddInt{Dest: dest, A: a, B: c})
	return dest
}

// ConstantInt emits a constant load and returns its destination.
func (b *Block) ConstantInt(k int32) Var {
	dest := b.fn.newVar()
	b.append(&ConstantInt{Dest: dest, K: k})
	return dest
}

// PhiSelect emits dest = cond ? a : b and returns dest.
func (b *Block) PhiSelect(cond, a, c Var) Var {
	dest := b.fn.newVar()
	b.append(&Phi{Dest: dest, Cond: cond, A: a, B: c})
	return dest
}

// Call emits a call to fn with the given arguments, allocating returnCount
// fresh destinations, and returns them in order.
func (b *Block) Call(fn FunctionID, args []Var, returnCount int) []Var {
	returns := make([]Var, returnCount)
	for i := range returns {
		returns[i] = b.fn.newVar()
	}
	b.append(&Call{Function: fn, Args: args, Returns: returns})
	return returns
}

func (b *Block) commit(exit Exit) {
	if b.Exit != nil {
		panic("ir: block committed twice")
	}
	b.Exit = exit
}

// Ret commits the block with a Return exit.
func (b *Block) Ret() { b.commit(&Return{}) }

// Branch commits the block with an unconditional jump to target.
func (b *Block) Branch(target *Block) { b.commit(&Branch{Target: target.id}) }

// ConditionalBranch commits the block with a two-way jump on cond.
func (b *Block) ConditionalBranch(cond Var, tBlock, fBlock *Block) {
	b.commit(&ConditionalBranch{Cond: cond, TBlock: tBlock.id, FBlock: fBlock.id})
}
