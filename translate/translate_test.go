package translate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")
	assert.Equal("line 3 'x' bad", From("line %d '%v' %v", 3, "x", "bad"))
}

func TestUse_Empty(t *testing.T) {
	assert := assert.New(t)

	Use()
	assert.Equal("stack underflow", From("stack underflow"))
}

func TestError(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(message.SetString(language.AmericanEnglish, "register file full", "register file full"))
	assert.NoError(message.SetString(language.German, "register file full", "Registersatz voll"))
	defer Use("en-US")

	err := Error("register file full")
	wrapped := errors.Join(err, Error("at line 3"))

	Use("en-US")
	assert.Equal("register file full", err.Error())

	// A later Use changes the message of an existing error value.
	Use("de-DE")
	assert.Equal("Registersatz voll", err.Error())
	assert.Equal("Registersatz voll\nat line 3", wrapped.Error())
	assert.True(errors.Is(wrapped, Error("register file full")))
}
