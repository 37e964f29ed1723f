// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/asmvm/display"
	"github.com/ezrec/asmvm/emulator"
	"github.com/ezrec/asmvm/machine"
	"github.com/ezrec/asmvm/stepper"
	"github.com/ezrec/asmvm/translate"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]int64

func (d defines) String() string {
	var parts []string
	for name, value := range d {
		parts = append(parts, fmt.Sprintf("%v=%v", name, value))
	}
	return strings.Join(parts, ",")
}

func (d defines) Set(arg string) (err error) {
	name, str, ok := strings.Cut(arg, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%q is not NAME=VALUE", arg)
		return
	}
	value, err := strconv.ParseInt(str, 0, 64)
	if err != nil {
		return
	}
	d[name] = value
	return
}

// summary returns the exit handler that reports how far the run got. A run
// that did not reach the end also names the line it stopped on.
func summary(emu *emulator.Emulator, out io.Writer) func() {
	return func() {
		if emu.Halted() {
			fmt.Fprintln(out, translate.From("%d instructions executed.", emu.Ticks))
			return
		}
		fmt.Fprintln(out, translate.From("%d instructions executed, stopped at line %d.", emu.Ticks, emu.LineNo()))
	}
}

func main() {
	var step bool
	var quiet bool
	var verbose bool
	var lang string
	predefine := defines{}

	flag.BoolVar(&step, "step", false, "Wait for Enter before each instruction")
	flag.BoolVar(&quiet, "quiet", false, "Do not display the machine state")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47), default from the host locale")
	flag.Var(predefine, "D", "Predefine NAME=VALUE for $(...) expressions")

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if flag.NArg() != 1 {
		atexit.Fatalf("usage: %v [-step] [-quiet] [-v] [-D NAME=VALUE]... <instruction_file>", os.Args[0])
	}
	path := flag.Arg(0)

	ld := &machine.Loader{Verbose: verbose}
	for name, value := range predefine {
		ld.Predefine(name, value)
	}

	prog, err := ld.Load(path)
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Step = step
	emu.Gate = &stepper.Stepper{Input: os.Stdin, Output: os.Stdout}
	if !quiet {
		emu.Display = &display.Display{Output: os.Stdout, Clear: true, Color: true}
	}

	emu.Reset()
	atexit.Register(summary(emu, os.Stderr))

	err = emu.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	fmt.Println(translate.From("Program execution completed."))
	atexit.Exit(0)
}
