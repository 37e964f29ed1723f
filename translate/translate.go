// Package translate formats user-visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// fallback is used when the host reports no usable locale.
const fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asmvm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message printer best matching the given BCP 47 locales.
// With no locales, en-US is used.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error is an error with an en-US message, translated each time it is
// formatted.
type Error string

func (e Error) Error() string {
	return From(string(e))
}
