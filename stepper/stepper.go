// Package stepper paces execution, one instruction per line of input.
package stepper

import (
	"bufio"
	"errors"
	"io"
	"log"

	"github.com/ezrec/asmvm/translate"
)

var f = translate.From

// Stepper waits for a newline on Input before each instruction.
// Once Input is exhausted, it no longer blocks.
type Stepper struct {
	Input  io.Reader
	Output io.Writer // If set, a prompt is written before each wait.

	reader *bufio.Reader
	closed bool
}

// Wait blocks until the next line of input arrives.
func (st *Stepper) Wait() (err error) {
	if st.closed || st.Input == nil {
		return
	}

	if st.Output != nil {
		_, err = io.WriteString(st.Output, f("Press Enter to execute the next instruction..."))
		if err != nil {
			return
		}
	}

	if st.reader == nil {
		st.reader = bufio.NewReader(st.Input)
	}

	_, err = st.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		log.Printf("stepper: input closed, running to completion")
		st.closed = true
		err = nil
	}

	return
}
