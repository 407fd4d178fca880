// Package textutil provides internal string validation helpers for the
// console command registry.
//
// Command names are restricted to a deliberately small charset so they stay
// easy to type and unambiguous to parse. Descriptions and usage strings allow
// the full printable ASCII range after tab normalization.
package textutil

import (
	"strings"
)

const (
	// asciiPrintableStart is the first printable ASCII character (space).
	asciiPrintableStart = 32
	// asciiPrintableEnd is the last printable ASCII character (~).
	asciiPrintableEnd = 126

	// tabReplacement substitutes for tab characters in descriptive text.
	tabReplacement = "    "
)

// IsValidName reports whether s is a valid command name: non-empty and
// composed only of lowercase letters, digits, underscores and hyphens.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		c := s[i]

		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}

	return true
}

// NormalizeTabs replaces every tab character in s with a fixed run of spaces.
func NormalizeTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	return strings.ReplaceAll(s, "\t", tabReplacement)
}

// IsPrintable reports whether s contains only printable ASCII characters.
// The empty string is printable.
func IsPrintable(s string) bool {
	for i := range len(s) {
		if s[i] < asciiPrintableStart || s[i] > asciiPrintableEnd {
			return false
		}
	}

	return true
}
