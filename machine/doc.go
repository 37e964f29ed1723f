// Package machine implements the register machine and program loader for the
// asmvm system.
//
// The machine consists of ten named integer registers (eax, ebx, ecx, edx,
// esi, edi, ebp, esp, the eip program counter and the cmp comparison flag),
// a variable store of named integer, real or character slots, and a LIFO
// integer stack. Programs are line-oriented text, decoded once by the Loader
// into Instructions, then executed one at a time by Machine.Tick until the
// program counter runs off the end of the program.
//
// Machine.Snapshot exposes a read-only copy of the state for display.
package machine
