package machine

// Variable is a named variable in a Snapshot.
type Variable struct {
	Name  string
	Value Value
}

// Snapshot is a read-only copy of the machine state between instructions.
type Snapshot struct {
	Ip           int        // Index of the next instruction.
	Instructions []string   // Source text of every instruction.
	Registers    Registers  // Current register values.
	Previous     Registers  // Register values before the last instruction.
	Variables    []Variable // Variables in allocation order.
	Stack        []int64    // Stack contents, top first.
	Halted       bool
}

// Changed returns true if a register differs from its value before the
// last instruction.
func (snap *Snapshot) Changed(reg Register) bool {
	return snap.Registers.Value[reg] != snap.Previous.Value[reg]
}

// Snapshot copies the current state. Nothing in the snapshot aliases the
// machine.
func (m *Machine) Snapshot() (snap Snapshot) {
	snap = Snapshot{
		Ip:           m.Registers.Ip(),
		Instructions: m.Program.Text(),
		Registers:    m.Registers,
		Previous:     m.previous,
		Stack:        m.Stack.PeekAll(),
		Halted:       m.Halted(),
	}

	for name, value := range m.Memory.All() {
		snap.Variables = append(snap.Variables, Variable{Name: name, Value: value})
	}

	return
}
