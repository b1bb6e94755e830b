package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeWord prepares a word for dictionary lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase using Swedish casing rules
//
// Inner whitespace, diacritics and hyphens are preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	// Casers carry state and must not be shared between goroutines.
	return cases.Lower(language.Swedish).String(word)
}

// SameWord reports whether a and b are equal ignoring case.
// Surrounding whitespace is significant.
func SameWord(a, b string) bool {
	if a == b {
		return true
	}
	c := cases.Lower(language.Swedish)
	return c.String(a) == c.String(b)
}
