package machine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word  string
		value Value
		ok    bool
	}){
		{"5", Int(5), true},
		{"-17", Int(-17), true},
		{"0", Int(0), true},
		{"3.25", Real(3.25), true},
		{"-0.5", Real(-0.5), true},
		{"'c'", Char('c'), true},
		{"'é'", Char('é'), true},
		{"1.2.3", Value{}, false},
		{"1.", Value{}, false},
		{".5", Value{}, false},
		{"'ab'", Value{}, false},
		{"\"c\"", Value{}, false},
		{"abc", Value{}, false},
		{"99999999999999999999", Value{}, false},
	}

	for _, entry := range table {
		value, err := ParseLiteral(entry.word)
		if entry.ok {
			assert.NoError(err, entry.word)
			assert.Equal(entry.value, value, entry.word)
		} else {
			assert.ErrorIs(err, ErrInvalidValueType, entry.word)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	assert := assert.New(t)

	assert.True(Int(3).Equal(Int(3)))
	assert.False(Int(3).Equal(Int(4)))
	assert.True(Int(5).Equal(Real(5.0)))
	assert.True(Real(2.5).Equal(Real(2.5)))
	assert.True(Char('a').Equal(Char('a')))
	assert.False(Char('a').Equal(Int('a')))
	assert.False(Int('a').Equal(Char('a')))
}

func TestValue_Add(t *testing.T) {
	assert := assert.New(t)

	sum, err := Int(2).Add(Int(3))
	assert.NoError(err)
	assert.Equal(Int(5), sum)

	sum, err = Int(2).Add(Real(0.5))
	assert.NoError(err)
	assert.Equal(Real(2.5), sum)

	_, err = Char('a').Add(Int(1))
	assert.ErrorIs(err, ErrInvalidValueType)

	sum, err = Int(math.MaxInt64).Add(Int(1))
	assert.NoError(err)
	assert.Equal(Int(math.MinInt64), sum)
}

func TestValue_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-4", Int(-4).String())
	assert.Equal("5.0", Real(5).String())
	assert.Equal("2.75", Real(2.75).String())
	assert.Equal("'x'", Char('x').String())
	assert.Equal("real", KIND_REAL.String())
}
