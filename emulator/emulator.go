// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/asmvm/machine"
)

// Display presents the machine state before each instruction.
type Display interface {
	Show(snap machine.Snapshot) error
}

// Gate blocks between instructions until it is told to continue.
type Gate interface {
	Wait() error
}

// Emulator state. Machine + presentation + pacing.
type Emulator struct {
	Verbose          bool // If set, enables verbose logging.
	*machine.Machine      // Reference to the machine simulation.

	Display Display // If set, shown the state before every instruction.
	Step    bool    // If set, Gate is waited on after every instruction.
	Gate    Gate    // Pacing gate.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *machine.Program) (emu *Emulator) {
	emu = &Emulator{
		Machine: machine.NewMachine(prog),
	}

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()
}

// LineNo returns the source line of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Machine.Program.LineNo(emu.Machine.Registers.Ip())
}

// show hands a snapshot to the display, if any.
func (emu *Emulator) show() (err error) {
	if emu.Display == nil {
		return
	}

	return emu.Display.Show(emu.Machine.Snapshot())
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	if emu.Machine.Halted() {
		done = true
		return
	}

	err = emu.show()
	if err != nil {
		return
	}

	ip := emu.Machine.Registers.Ip()
	err = emu.Machine.Tick()
	if err != nil {
		ins := machine.Instruction{}
		if ip >= 0 && ip < emu.Machine.Program.Len() {
			ins = emu.Machine.Program.Instructions[ip]
		}
		err = &ErrRuntime{LineNo: ins.LineNo, Line: ins.Text, Err: err}
		return
	}

	if emu.Step && emu.Gate != nil {
		err = emu.Gate.Wait()
		if err != nil {
			return
		}
	}

	done = emu.Machine.Halted()
	return
}

// Run ticks until the program completes or fails, then shows the final state.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d instructions", emu.Machine.Ticks)
	}

	return emu.show()
}
