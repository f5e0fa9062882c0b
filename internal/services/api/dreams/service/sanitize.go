package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// invisible matches control and format runes except newline and tab
var invisible = runes.Predicate(func(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r)
})

// Sanitize composes to NFC, drops invisible runes and trims. A chain is
// stateful so each call builds its own.
func Sanitize(s string) string {
	t := transform.Chain(norm.NFC, runes.Remove(invisible), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}
