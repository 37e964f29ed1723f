package machine

import (
	"errors"
	"iter"
	"slices"
)

// Memory is the variable store. Each name holds one scalar Value.
//
// Writes retype the slot: the stored kind is whatever was last written,
// with no coercion between integer and real.
type Memory struct {
	slot  map[string]Value
	order []string // allocation order, for display
}

// Allocate creates a new variable.
func (mem *Memory) Allocate(name string, value Value) (err error) {
	if _, ok := mem.slot[name]; ok {
		err = errors.Join(ErrDuplicateVariable, ErrName(name))
		return
	}
	if !value.Valid() {
		err = ErrInvalidValueType
		return
	}

	if mem.slot == nil {
		mem.slot = make(map[string]Value, 16)
	}
	mem.slot[name] = value
	mem.order = append(mem.order, name)
	return
}

// Has returns true if the variable is allocated.
func (mem *Memory) Has(name string) (ok bool) {
	_, ok = mem.slot[name]
	return
}

func (mem *Memory) Read(name string) (value Value, err error) {
	value, ok := mem.slot[name]
	if !ok {
		err = errors.Join(ErrUnknownVariable, ErrName(name))
		return
	}
	return
}

func (mem *Memory) Write(name string, value Value) (err error) {
	if _, ok := mem.slot[name]; !ok {
		err = errors.Join(ErrUnknownVariable, ErrName(name))
		return
	}
	if !value.Valid() {
		err = ErrInvalidValueType
		return
	}

	mem.slot[name] = value
	return
}

// Free releases a variable. The name may be allocated again afterwards.
func (mem *Memory) Free(name string) (err error) {
	if _, ok := mem.slot[name]; !ok {
		err = errors.Join(ErrUnknownVariable, ErrName(name))
		return
	}

	delete(mem.slot, name)
	mem.order = slices.DeleteFunc(mem.order, func(s string) bool { return s == name })
	return
}

func (mem *Memory) Len() int {
	return len(mem.slot)
}

// All iterates over the variables in allocation order.
func (mem *Memory) All() iter.Seq2[string, Value] {
	return func(yield func(name string, value Value) bool) {
		for _, name := range mem.order {
			if !yield(name, mem.slot[name]) {
				return
			}
		}
	}
}

func (mem *Memory) Reset() {
	clear(mem.slot)
	mem.order = mem.order[:0]
}
