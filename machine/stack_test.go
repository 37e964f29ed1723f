package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(-42)
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(int64(-42), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x1234)
	s.Push(0x5678)

	val, err := s.Pop()
	assert.NoError(err)
	assert.Equal(int64(0x5678), val)
	assert.Equal(1, s.Len())

	val, err = s.Pop()
	assert.NoError(err)
	assert.Equal(int64(0x1234), val)
	assert.Equal(0, s.Len())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, err := s.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(int64(0), val)
}

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)

	for _, x := range []int64{0, -1, 99, 1 << 40} {
		before := s.Len()
		s.Push(x)
		val, err := s.Pop()
		assert.NoError(err)
		assert.Equal(x, val)
		assert.Equal(before, s.Len())
	}
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Peek()
	assert.False(ok)
	assert.Equal(int64(0), val)

	s.Push(7)
	s.Push(8)

	val, ok = s.Peek()
	assert.True(ok)
	assert.Equal(int64(8), val)
	assert.Equal(2, s.Len())
}

func TestStack_PeekAll(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.Empty(s.PeekAll())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	view := s.PeekAll()
	assert.Equal([]int64{3, 2, 1}, view)

	// The view does not alias the stack.
	view[0] = 100
	assert.Equal([]int64{1, 2, 3}, s.Data)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Reset()
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Len())
}
