package machine

import (
	"github.com/ezrec/asmvm/translate"
)

var f = translate.From

// Sentinel messages are translated when formatted, so translate.Use applies
// to them after package initialization.
var (
	// Machine errors
	ErrUnknownInstruction = translate.Error("unknown instruction")
	ErrInvalidJumpTarget  = translate.Error("invalid jump target")
	ErrUnknownRegister    = translate.Error("unknown register")
	ErrUnknownVariable    = translate.Error("unknown variable")
	ErrInvalidDestination = translate.Error("invalid destination")
	ErrInvalidValueType   = translate.Error("value must be an integer, real, or single character")
	ErrDuplicateVariable  = translate.Error("variable already exists")
	ErrStackUnderflow     = translate.Error("pop from empty stack")
	ErrHalted             = translate.Error("machine halted")

	// Loader errors
	ErrDuplicateLabel   = translate.Error("label duplicated")
	ErrUnknownLabel     = translate.Error("label unknown")
	ErrLabelSyntax      = translate.Error("label syntax")
	ErrVariableSyntax   = translate.Error("invalid variable declaration")
	ErrOperandCount     = translate.Error("wrong number of operands")
	ErrExpressionSyntax = translate.Error("expression syntax")
)

// ErrLoad reports a program file that could not be opened or read.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("unable to load '%v': %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a malformed source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a register, variable or integer", string(err))
}

type ErrParseLiteral string

func (err ErrParseLiteral) Error() string {
	return f("'%v' is not an integer, real or character literal", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrName string

func (err ErrName) Error() string {
	return f("'%v'", string(err))
}
