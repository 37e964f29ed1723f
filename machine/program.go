package machine

// Program is a loaded, decoded instruction sequence and its label table.
// It is not modified after loading.
type Program struct {
	Instructions []Instruction
	Labels       Labels
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Text returns the source text of each instruction.
func (prog *Program) Text() (text []string) {
	text = make([]string, len(prog.Instructions))
	for n := range prog.Instructions {
		text[n] = prog.Instructions[n].Text
	}
	return
}

// LineNo returns the source line of the instruction at an index, or 0 if the
// index is out of range.
func (prog *Program) LineNo(index int) int {
	if index < 0 || index >= len(prog.Instructions) {
		return 0
	}
	return prog.Instructions[index].LineNo
}
