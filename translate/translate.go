// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats compiler diagnostics for the user's locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("shasm: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer best matching the BCP 47 tags.
// With no tags, en-US is used.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer.Store(message.NewPrinter(message.MatchLanguage(tags...)))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
