package validation

import (
	"strings"
	"time"

	"github.com/YusovID/racing-league/internal/apperrors"
)

const (
	// DateLayout is day-month-year; day and month may have one or two digits.
	DateLayout = "2-1-2006"

	normalizedLayout = "2006-01-02"
)

// IsDate reports whether s is a real calendar date in DateLayout.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return err == nil
}

// NormalizeDate rewrites a date to zero-padded yyyy-mm-dd, which sorts
// lexically in calendar order. Already-normalized input is accepted as is.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{DateLayout, normalizedLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(normalizedLayout), nil
		}
	}

	return "", apperrors.Malformed("the date '%s' is not valid, use dd-mm-yyyy (e.g. 15-03-2025)", s)
}

// CompareDates compares two dates chronologically: -1 if a is before b,
// 0 if equal, +1 if after.
func CompareDates(a, b string) (int, error) {
	na, err := NormalizeDate(a)
	if err != nil {
		return 0, err
	}

	nb, err := NormalizeDate(b)
	if err != nil {
		return 0, err
	}

	return strings.Compare(na, nb), nil
}
