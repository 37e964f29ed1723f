package machine

import (
	"slices"
)

// Stack is a LIFO of integers. The top of the stack is the end of Data.
type Stack struct {
	Data []int64
}

func (s *Stack) Push(value int64) {
	s.Data = append(s.Data, value)
}

// Pop removes the top of the stack. An empty stack is ErrStackUnderflow.
func (s *Stack) Pop() (value int64, err error) {
	value, ok := s.Peek()
	if !ok {
		err = ErrStackUnderflow
		return
	}

	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Len() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value int64, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// PeekAll returns a copy of the stack, top first.
func (s *Stack) PeekAll() (values []int64) {
	values = slices.Clone(s.Data)
	slices.Reverse(values)
	return
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
