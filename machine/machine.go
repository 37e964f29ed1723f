package machine

import (
	"errors"
	"log"
	"strconv"
)

// Machine is the execution context for a loaded Program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	// Report receives the conditions that do not stop the run: unknown
	// instructions and unresolvable jump targets. If nil, they are logged.
	Report func(ins *Instruction, err error)

	Program   *Program  // Program being executed.
	Registers Registers // Register bank, including eip and cmp.
	Memory    Memory    // Variable store.
	Stack     Stack     // Integer stack.

	Ticks int // Instructions executed since reset.

	previous Registers // Registers before the most recent Tick.
}

// NewMachine creates a machine ready to run a program from its first
// instruction.
func NewMachine(prog *Program) (m *Machine) {
	if prog == nil {
		prog = &Program{}
	}
	m = &Machine{
		Program: prog,
	}

	return
}

// Reset the machine state.
// - Clears the registers, variables and stack.
// - Zeros the tick counter.
// - Sets the program counter to the first instruction.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Registers.Reset()
	m.previous.Reset()
	m.Memory.Reset()
	m.Stack.Reset()
	m.Ticks = 0
}

// Halted returns true once the program counter has run past the last
// instruction.
func (m *Machine) Halted() bool {
	return m.Registers.Ip() >= m.Program.Len()
}

// Tick fetches, decodes and executes the instruction at the program counter,
// then advances the program counter by one.
//
// If an instruction fails, the program counter stays on it and the error
// is returned; the run should not continue.
func (m *Machine) Tick() (err error) {
	if m.Halted() {
		err = ErrHalted
		return
	}

	ip := m.Registers.Ip()
	if ip < 0 {
		err = errors.Join(ErrInvalidJumpTarget, ErrName(strconv.Itoa(ip)))
		return
	}

	m.previous = m.Registers

	ins := &m.Program.Instructions[ip]
	err = m.Execute(ins)
	if err != nil {
		return
	}

	m.Registers.Value[REG_EIP]++
	m.Ticks++

	return
}

// Run ticks until the machine halts or an instruction fails.
func (m *Machine) Run() (err error) {
	for !m.Halted() {
		err = m.Tick()
		if err != nil {
			return
		}
	}

	return
}

// report hands a non-fatal condition to the Report hook.
func (m *Machine) report(ins *Instruction, err error) {
	if m.Report != nil {
		m.Report(ins, err)
		return
	}

	log.Printf("machine: line %d: %v", ins.LineNo, err)
}

// Execute executes a single decoded instruction. Control flow instructions
// set the program counter one before their target, as Tick always advances.
func (m *Machine) Execute(ins *Instruction) (err error) {
	if m.Verbose {
		log.Printf("machine: %03d: %v", m.Registers.Ip(), ins)
	}

	args := ins.Args

	switch ins.Op {
	case OP_LABEL:
		// no-op
	case OP_VAR:
		err = m.Memory.Allocate(ins.Name, ins.Value)
	case OP_MOV:
		if !m.writable(args[0]) {
			err = errors.Join(ErrInvalidDestination, ErrName(args[0]))
			return
		}
		var value Value
		value, err = m.getValue(args[1])
		if err != nil {
			return
		}
		err = m.setValue(args[0], value)
	case OP_ADD:
		if !m.writable(args[0]) {
			err = errors.Join(ErrInvalidDestination, ErrName(args[0]))
			return
		}
		var a, b Value
		a, err = m.getValue(args[0])
		if err != nil {
			return
		}
		b, err = m.getValue(args[1])
		if err != nil {
			return
		}
		var sum Value
		sum, err = a.Add(b)
		if err != nil {
			return
		}
		err = m.setValue(args[0], sum)
	case OP_INC:
		var value int64
		value, err = m.Registers.Get(args[0])
		if err != nil {
			err = errors.Join(ErrInvalidDestination, err)
			return
		}
		err = m.Registers.Set(args[0], value+1)
	case OP_CMP:
		var a, b Value
		a, err = m.getValue(args[0])
		if err != nil {
			return
		}
		b, err = m.getValue(args[1])
		if err != nil {
			return
		}
		m.Registers.SetCond(a.Equal(b))
	case OP_JMP:
		m.jump(ins, args[0])
	case OP_JE:
		if m.Registers.Cond() {
			m.jump(ins, args[0])
		}
	case OP_PUSH:
		var value Value
		value, err = m.getValue(args[0])
		if err != nil {
			return
		}
		if value.Kind != KIND_INT {
			err = errors.Join(ErrInvalidValueType, ErrName(args[0]))
			return
		}
		m.Stack.Push(value.Int)
	case OP_POP:
		// Check the destination before the stack is touched.
		_, err = m.Registers.Get(args[0])
		if err != nil {
			err = errors.Join(ErrInvalidDestination, err)
			return
		}
		var value int64
		value, err = m.Stack.Pop()
		if err != nil {
			return
		}
		err = m.Registers.Set(args[0], value)
	case OP_FREE:
		err = m.Memory.Free(args[0])
	case OP_DEBUG:
		log.Printf("machine: register values:")
		for name, value := range m.Registers.All() {
			log.Printf("machine: %5s: %v", name, value)
		}
	default:
		m.report(ins, errors.Join(ErrUnknownInstruction, ErrName(ins.Name)))
	}

	return
}

// jump sets the program counter so the next Tick lands on the target.
// An unresolvable target is reported and leaves control flow unchanged.
func (m *Machine) jump(ins *Instruction, target string) {
	index, err := m.Program.Labels.Resolve(target)
	if err != nil {
		m.report(ins, errors.Join(ErrInvalidJumpTarget, err))
		return
	}

	m.Registers.Value[REG_EIP] = int64(index) - 1
}

// writable returns true if the operand names a register or an allocated
// variable.
func (m *Machine) writable(operand string) bool {
	if _, ok := LookupRegister(operand); ok {
		return true
	}
	return m.Memory.Has(operand)
}

// getValue resolves an operand: a register name, then a variable name, then
// an integer literal.
func (m *Machine) getValue(operand string) (value Value, err error) {
	if v, rerr := m.Registers.Get(operand); rerr == nil {
		value = Int(v)
		return
	}

	if m.Memory.Has(operand) {
		return m.Memory.Read(operand)
	}

	v, perr := strconv.ParseInt(operand, 10, 64)
	if perr != nil {
		err = errors.Join(ErrUnknownVariable, ErrParseValue(operand))
		return
	}

	value = Int(v)
	return
}

// setValue stores to a register or an allocated variable. Registers only
// hold integers.
func (m *Machine) setValue(operand string, value Value) (err error) {
	if _, ok := LookupRegister(operand); ok {
		if value.Kind != KIND_INT {
			err = errors.Join(ErrInvalidValueType, ErrName(operand))
			return
		}
		return m.Registers.Set(operand, value.Int)
	}

	if m.Memory.Has(operand) {
		return m.Memory.Write(operand, value)
	}

	err = errors.Join(ErrInvalidDestination, ErrName(operand))
	return
}
