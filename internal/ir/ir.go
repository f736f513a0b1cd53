// Package ir implements the block-structured, SSA-style intermediate
// representation rill's compiler emits: functions containing basic blocks
// of straight-line instructions terminated by a distinguished exit. Blocks
// expose cursor semantics (see Block) matching the "clone, commit, advance"
// protocol described by the compiler's per-node contracts.
package ir

// Var is a dense, per-function variable id. Every variable is written
// exactly once along any straight-line path.
type Var int

// BlockID identifies a block within a single function. Block 0 is always
// the entry block and is printed as "main".
type BlockID int

// FunctionID identifies a function within a Program.
type FunctionID int

// Program is an ordered sequence of functions; monomorphisation appends to
// it as the compiler discovers new argument shapes.
type Program struct {
	Functions []*Function
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{}
}

// AddFunction appends fn to the program and returns its id.
func (p *Program) AddFunction(fn *Function) FunctionID {
	id := FunctionID(len(p.Functions))
	p.Functions = append(p.Functions, fn)
	return id
}

// Function is one monomorphised function: parameters, returns, a dense
// variable counter, and an ordered list of basic blocks.
type Function struct {
	Params  []Var
	Returns []Var
	numVars int
	Blocks  []*Block
}

// NewFunction returns an empty function with no blocks, parameters or
// returns.
func NewFunction() *Function {
	return &Function{}
}

// NumVars is the function's current variable count (the dense id one past
// the highest allocated variable).
func (f *Function) NumVars() int { return f.numVars }

func (f *Function) newVar() Var {
	v := Var(f.numVars)
	f.numVars++
	return v
}

// NewParam allocates a fresh variable, registers it as the function's next
// parameter (in order), and returns it.
func (f *Function) NewParam() Var {
	v := f.newVar()
	f.Params = append(f.Params, v)
	return v
}

// AddReturn registers v as the function's next return variable, in order.
func (f *Function) AddReturn(v Var) {
	f.Returns = append(f.Returns, v)
}

// NewBlock registers a new, open block and returns a cursor to it. The
// block's id is its index in Blocks, assigned at registration time so that
// successors can be referenced before they are filled in.
func (f *Function) NewBlock() *Block {
	b := &Block{fn: f, id: BlockID(len(f.Blocks))}
	f.Blocks = append(f.Blocks, b)
	return b
}

// Block looks up a block by id.
func (f *Function) Block(id BlockID) *Block {
	return f.Blocks[id]
}
