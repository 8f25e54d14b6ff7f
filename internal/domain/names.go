package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// SameName compares names the way uniqueness rules do: case-insensitively
// and ignoring surrounding whitespace.
func SameName(a, b string) bool {
	return foldName(a) == foldName(b)
}

func foldName(s string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(s))
}
