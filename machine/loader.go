// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"errors"
	"io"
	"log"
	"maps"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Loader decodes program text into a Program, once, before execution.
//
// Blank lines and ';' comments are dropped before counting instruction
// indexes, so a label always resolves to the next retained line.
type Loader struct {
	Verbose bool // If set, verbosely logs each decoded line.

	predefine map[string]int64 // Constants visible to $(...) expressions.
}

// Predefine defines or redefines an expression constant.
func (ld *Loader) Predefine(name string, value int64) {
	if ld.predefine == nil {
		ld.predefine = map[string]int64{name: value}
	} else {
		ld.predefine[name] = value
	}
}

// sourceLine is a retained line of program text.
type sourceLine struct {
	lineNo int
	text   string
}

// Load reads and decodes a program file.
func (ld *Loader) Load(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}
	defer inf.Close()

	prog, err = ld.Parse(inf)
	var syn *ErrSyntax
	if err != nil && !errors.As(err, &syn) {
		err = &ErrLoad{Path: path, Err: err}
	}

	return
}

// Parse decodes an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	var lines []sourceLine

	scanner := bufio.NewScanner(input)
	var lineno int
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(stripComment(scanner.Text()))
		if len(text) == 0 {
			continue
		}
		lines = append(lines, sourceLine{lineNo: lineno, text: text})
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	labels := Labels{}

	// Labels first, so expressions and jumps may refer forward.
	for n, line := range lines {
		words := strings.Fields(line.text)
		if !strings.HasSuffix(words[0], ":") {
			continue
		}
		name := strings.TrimSuffix(words[0], ":")
		if len(name) == 0 || len(words) != 1 {
			err = &ErrSyntax{LineNo: line.lineNo, Line: line.text, Err: ErrLabelSyntax}
			return
		}
		err = labels.Define(name, n+1)
		if err != nil {
			err = &ErrSyntax{LineNo: line.lineNo, Line: line.text, Err: err}
			return
		}
	}

	equate := maps.Clone(ld.predefine)
	if equate == nil {
		equate = map[string]int64{}
	}
	for name, index := range labels {
		equate[name] = int64(index)
	}

	prog = &Program{
		Instructions: make([]Instruction, 0, len(lines)),
		Labels:       labels,
	}

	for _, line := range lines {
		var ins Instruction
		equate["LINENO"] = int64(line.lineNo)
		ins, err = ld.decode(line, equate)
		if err != nil {
			err = &ErrSyntax{LineNo: line.lineNo, Line: line.text, Err: err}
			prog = nil
			return
		}
		if ins.Op == OP_VAR && ins.Value.Kind == KIND_INT {
			equate[ins.Name] = ins.Value.Int
		}
		if ld.Verbose {
			log.Printf("machine: %v: [%d] %v", line.lineNo, len(prog.Instructions), ins.String())
		}
		prog.Instructions = append(prog.Instructions, ins)
	}

	return
}

// decode turns a retained line into an Instruction.
func (ld *Loader) decode(line sourceLine, equate map[string]int64) (ins Instruction, err error) {
	ins = Instruction{LineNo: line.lineNo, Text: line.text}

	words := strings.Fields(line.text)
	if strings.HasSuffix(words[0], ":") {
		ins.Op = OP_LABEL
		ins.Name = strings.TrimSuffix(words[0], ":")
		return
	}

	text, err := expandExpressions(line.text, equate)
	if err != nil {
		return
	}
	words = strings.Fields(text)

	if words[0] == "var" {
		if len(words) != 4 || words[2] != "=" {
			err = ErrVariableSyntax
			return
		}
		ins.Op = OP_VAR
		ins.Name = words[1]
		ins.Value, err = ParseLiteral(words[3])
		return
	}

	ins.Name = words[0]
	ins.Args = strings.FieldsFunc(strings.TrimPrefix(text, words[0]), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	op, ok := opMap[ins.Name]
	if !ok {
		// Reported when executed.
		ins.Op = OP_UNKNOWN
		return
	}
	ins.Op = op

	if len(ins.Args) != opArgs[op] {
		err = ErrOperandCount
		return
	}

	return
}

// stripComment removes a ';' comment that is not inside a character quote.
func stripComment(text string) string {
	quoted := false
	for n, r := range text {
		switch r {
		case '\'':
			quoted = !quoted
		case ';':
			if !quoted {
				return text[:n]
			}
		}
	}
	return text
}

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// expandExpressions replaces each $(...) with its integer value.
func expandExpressions(text string, equate map[string]int64) (expanded string, err error) {
	expanded = reExpression.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := evalExpression(str[2:len(str)-1], equate)
		if _err != nil {
			err = _err
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// evalExpression evaluates a constant integer expression.
func evalExpression(expr string, equate map[string]int64) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, len(equate))
	for key, val := range equate {
		pred[key] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrExpressionSyntax, ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = errors.Join(ErrExpressionSyntax, ErrParseExpression(expr))
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = errors.Join(ErrExpressionSyntax, ErrParseExpression(expr))
		return
	}

	return
}
