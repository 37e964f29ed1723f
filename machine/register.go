package machine

import (
	"errors"
	"fmt"
	"iter"
)

// Register is an index into the register bank.
type Register int

const (
	REG_EAX   = Register(0)  // eax
	REG_EBX   = Register(1)  // ebx
	REG_ECX   = Register(2)  // ecx
	REG_EDX   = Register(3)  // edx
	REG_ESI   = Register(4)  // esi
	REG_EDI   = Register(5)  // edi
	REG_EBP   = Register(6)  // ebp
	REG_ESP   = Register(7)  // esp
	REG_EIP   = Register(8)  // eip, program counter
	REG_CMP   = Register(9)  // cmp, comparison flag
	REG_COUNT = Register(10) // number of registers
)

var registerName = [REG_COUNT]string{
	"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp", "eip", "cmp",
}

// regMap is a map of register names to register indexes.
var regMap = func() map[string]Register {
	m := make(map[string]Register, REG_COUNT)
	for n, name := range registerName {
		m[name] = Register(n)
	}
	return m
}()

func (r Register) String() string {
	if r < 0 || r >= REG_COUNT {
		return fmt.Sprintf("Register(%d)", int(r))
	}
	return registerName[r]
}

// LookupRegister returns the register for a name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = regMap[name]
	return
}

// Registers is the register file. The program counter and the comparison
// flag are ordinary members, addressable by name like the rest.
type Registers struct {
	Value [REG_COUNT]int64
}

// Get returns the value of a named register.
func (rf *Registers) Get(name string) (value int64, err error) {
	reg, ok := regMap[name]
	if !ok {
		err = errors.Join(ErrUnknownRegister, ErrName(name))
		return
	}

	value = rf.Value[reg]
	return
}

// Set sets the value of a named register.
func (rf *Registers) Set(name string, value int64) (err error) {
	reg, ok := regMap[name]
	if !ok {
		err = errors.Join(ErrUnknownRegister, ErrName(name))
		return
	}

	rf.Value[reg] = value
	return
}

// Ip returns the program counter.
func (rf *Registers) Ip() int {
	return int(rf.Value[REG_EIP])
}

// Cond returns the comparison flag. Only 1 is true; any other value written
// to cmp reads as false.
func (rf *Registers) Cond() bool {
	return rf.Value[REG_CMP] == 1
}

// SetCond stores the comparison flag as 1 (true) or 0 (false).
func (rf *Registers) SetCond(cond bool) {
	rf.Value[REG_CMP] = 0
	if cond {
		rf.Value[REG_CMP] = 1
	}
}

// Reset zeros all registers.
func (rf *Registers) Reset() {
	clear(rf.Value[:])
}

// All iterates over the registers in bank order.
func (rf *Registers) All() iter.Seq2[string, int64] {
	return func(yield func(name string, value int64) bool) {
		for n, name := range registerName {
			if !yield(name, rf.Value[n]) {
				return
			}
		}
	}
}
