package emulator

import (
	"github.com/ezrec/asmvm/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int    // Source line of the failed instruction.
	Line   string // Source text of the failed instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
