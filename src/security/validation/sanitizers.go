// src/security/validation/sanitizers.go
package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters. Tabs and newlines are
// turned into spaces so they still separate query tokens.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsPrint(r):
			return r
		}
		return -1
	}, s)
}

// SanitizeQuery cleans a raw launcher query for tokenizing.
func SanitizeQuery(s string) string {
	return strings.TrimSpace(StripUnprintable(s))
}
