package machine

import (
	"errors"
	"strconv"
)

// Labels maps jump labels to instruction indexes.
type Labels map[string]int

// Define records a label. Redefinition is ErrDuplicateLabel.
func (lt Labels) Define(name string, index int) (err error) {
	if _, ok := lt[name]; ok {
		err = errors.Join(ErrDuplicateLabel, ErrName(name))
		return
	}

	lt[name] = index
	return
}

// Resolve returns the instruction index for a jump target, which is either a
// defined label or a non-negative integer address.
func (lt Labels) Resolve(target string) (index int, err error) {
	index, ok := lt[target]
	if ok {
		return
	}

	// Addresses are unsigned decimal, with no sign.
	if len(target) == 0 || target[0] < '0' || target[0] > '9' {
		err = errors.Join(ErrUnknownLabel, ErrName(target))
		return
	}
	address, perr := strconv.ParseInt(target, 10, 0)
	if perr != nil {
		err = errors.Join(ErrUnknownLabel, ErrName(target))
		return
	}

	index = int(address)
	return
}
