package machine

import (
	"fmt"
	"strings"
)

// Opcode is the decoded operation of an Instruction.
type Opcode int

const (
	OP_UNKNOWN = Opcode(0)  // ?
	OP_LABEL   = Opcode(1)  // label
	OP_VAR     = Opcode(2)  // var
	OP_MOV     = Opcode(3)  // mov
	OP_ADD     = Opcode(4)  // add
	OP_INC     = Opcode(5)  // inc
	OP_CMP     = Opcode(6)  // cmp
	OP_JMP     = Opcode(7)  // jmp
	OP_JE      = Opcode(8)  // je
	OP_PUSH    = Opcode(9)  // push
	OP_POP     = Opcode(10) // pop
	OP_FREE    = Opcode(11) // free
	OP_DEBUG   = Opcode(12) // debug
)

// opMap maps operation words to opcodes. Labels and declarations are
// recognized by the loader before this lookup.
var opMap = map[string]Opcode{
	"mov":   OP_MOV,
	"add":   OP_ADD,
	"inc":   OP_INC,
	"cmp":   OP_CMP,
	"jmp":   OP_JMP,
	"je":    OP_JE,
	"push":  OP_PUSH,
	"pop":   OP_POP,
	"free":  OP_FREE,
	"debug": OP_DEBUG,
}

// opArgs is the operand count of each operation.
var opArgs = map[Opcode]int{
	OP_MOV:   2,
	OP_ADD:   2,
	OP_INC:   1,
	OP_CMP:   2,
	OP_JMP:   1,
	OP_JE:    1,
	OP_PUSH:  1,
	OP_POP:   1,
	OP_FREE:  1,
	OP_DEBUG: 0,
}

func (op Opcode) String() string {
	switch op {
	case OP_UNKNOWN:
		return "?"
	case OP_LABEL:
		return "label"
	case OP_VAR:
		return "var"
	}
	for word, code := range opMap {
		if code == op {
			return word
		}
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Instruction is a single decoded program line.
type Instruction struct {
	LineNo int      // Source line number.
	Text   string   // Source text, comments and outer whitespace removed.
	Op     Opcode   // Decoded operation.
	Name   string   // Operation word, label name, or declared variable name.
	Args   []string // Operands.
	Value  Value    // Initial value of a declaration.
}

// IsLabel returns true if the instruction defines a label.
func (ins *Instruction) IsLabel() bool {
	return ins.Op == OP_LABEL
}

// String returns the instruction as it would be written.
func (ins *Instruction) String() string {
	switch ins.Op {
	case OP_LABEL:
		return ins.Name + ":"
	case OP_VAR:
		return fmt.Sprintf("var %v = %v", ins.Name, ins.Value)
	}
	if len(ins.Args) == 0 {
		return ins.Name
	}
	return ins.Name + " " + strings.Join(ins.Args, ", ")
}
