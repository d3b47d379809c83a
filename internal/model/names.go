package model

import (
	"regexp"
	"strings"
)

// trailingID matches an employee ID appended after the name, e.g.
// "Иванов Иван 12345".
var trailingID = regexp.MustCompile(`\s+\d+$`)

var innerSpace = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a display name for identity comparison: trims,
// strips a trailing run of digits preceded by whitespace, and collapses
// internal whitespace to single spaces.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	name = trailingID.ReplaceAllString(strings.TrimSpace(name), "")
	return strings.TrimSpace(innerSpace.ReplaceAllString(name, " "))
}

// MatchNames reports whether two display names refer to the same person:
// case-insensitive equality of the normalized forms.
func MatchNames(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}

// ParseFullName splits a full name into first and last parts. The first
// token is the first name, everything after it the last name.
func ParseFullName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
