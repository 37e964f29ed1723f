package machine

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Kind is the type tag of a scalar Value.
type Kind int

const (
	KIND_INT  = Kind(0) // int
	KIND_REAL = Kind(1) // real
	KIND_CHAR = Kind(2) // char
)

var kindName = [...]string{
	KIND_INT:  "int",
	KIND_REAL: "real",
	KIND_CHAR: "char",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindName[k]
}

// Value is a scalar held by a variable slot: exactly one of an integer,
// a real or a single character, as selected by Kind.
type Value struct {
	Kind Kind
	Int  int64
	Real float64
	Char rune
}

// Int makes an integer value.
func Int(v int64) Value {
	return Value{Kind: KIND_INT, Int: v}
}

// Real makes a real value.
func Real(v float64) Value {
	return Value{Kind: KIND_REAL, Real: v}
}

// Char makes a character value.
func Char(c rune) Value {
	return Value{Kind: KIND_CHAR, Char: c}
}

// Valid returns true if the value carries one of the three scalar kinds.
func (v Value) Valid() bool {
	switch v.Kind {
	case KIND_INT, KIND_REAL, KIND_CHAR:
		return true
	}
	return false
}

// Numeric returns true for integer and real values.
func (v Value) Numeric() bool {
	return v.Kind == KIND_INT || v.Kind == KIND_REAL
}

// Float returns a numeric value as a float64.
func (v Value) Float() float64 {
	if v.Kind == KIND_REAL {
		return v.Real
	}
	return float64(v.Int)
}

// Equal compares two values. Numeric values compare by value regardless of
// kind, characters only equal the same character.
func (v Value) Equal(o Value) bool {
	switch {
	case v.Kind == KIND_INT && o.Kind == KIND_INT:
		return v.Int == o.Int
	case v.Numeric() && o.Numeric():
		return v.Float() == o.Float()
	case v.Kind == KIND_CHAR && o.Kind == KIND_CHAR:
		return v.Char == o.Char
	}
	return false
}

// Add sums two numeric values. The result is real if either side is real.
// Integer sums wrap in two's complement on overflow, as inc does.
func (v Value) Add(o Value) (sum Value, err error) {
	if !v.Numeric() || !o.Numeric() {
		err = ErrInvalidValueType
		return
	}

	if v.Kind == KIND_INT && o.Kind == KIND_INT {
		sum = Int(v.Int + o.Int)
	} else {
		sum = Real(v.Float() + o.Float())
	}

	return
}

// String formats the value the way it would be written as a literal.
func (v Value) String() string {
	switch v.Kind {
	case KIND_INT:
		return strconv.FormatInt(v.Int, 10)
	case KIND_REAL:
		str := strconv.FormatFloat(v.Real, 'f', -1, 64)
		if _, err := strconv.ParseInt(str, 10, 64); err == nil {
			str += ".0"
		}
		return str
	case KIND_CHAR:
		return "'" + string(v.Char) + "'"
	}
	return "<invalid>"
}

var (
	reInt  = regexp.MustCompile(`^-?[0-9]+$`)
	reReal = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

// ParseLiteral infers the type of a declaration literal: integer first,
// then real with a single decimal point, then a quoted single character.
func ParseLiteral(word string) (value Value, err error) {
	switch {
	case reInt.MatchString(word):
		var v int64
		v, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = errors.Join(ErrInvalidValueType, ErrParseLiteral(word))
			return
		}
		value = Int(v)
	case reReal.MatchString(word):
		var v float64
		v, err = strconv.ParseFloat(word, 64)
		if err != nil {
			err = errors.Join(ErrInvalidValueType, ErrParseLiteral(word))
			return
		}
		value = Real(v)
	default:
		runes := []rune(word)
		if len(runes) == 3 && runes[0] == '\'' && runes[2] == '\'' {
			value = Char(runes[1])
			return
		}
		err = errors.Join(ErrInvalidValueType, ErrParseLiteral(word))
	}

	return
}
