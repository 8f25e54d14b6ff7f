package validation

import (
	"sort"
	"testing"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "5-3-2024", expected: "2024-03-05"},
		{input: "05-03-2024", expected: "2024-03-05"},
		{input: " 31-12-2023 ", expected: "2023-12-31"},
		{input: "29-02-2024", expected: "2024-02-29"},
		{input: "2024-03-05", expected: "2024-03-05"},
	}

	for _, tc := range testCases {
		got, err := NormalizeDate(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, got, tc.input)
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "29-02-2023", "32-01-2024", "1/2/2024", "hoy", "5-3-24"} {
		_, err := NormalizeDate(input)
		assert.ErrorIs(t, err, apperrors.ErrMalformed, input)
	}
}

// Normalized strings must order the same way the calendar does,
// even where the raw dd-mm-yyyy text orders differently.
func TestNormalizeDate_OrdersChronologically(t *testing.T) {
	raw := []string{"5-3-2024", "10-01-2025", "2024-03-05", "1-12-2023", "20-2-2024"}
	chronological := []string{"1-12-2023", "20-2-2024", "5-3-2024", "2024-03-05", "10-01-2025"}

	// Lexical order of the raw text is wrong: "10-01-2025" < "5-3-2024".
	assert.Less(t, "10-01-2025", "5-3-2024")

	normalized := make(map[string]string, len(raw))
	for _, r := range raw {
		n, err := NormalizeDate(r)
		require.NoError(t, err)

		normalized[r] = n
	}

	sorted := append([]string(nil), raw...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return normalized[sorted[i]] < normalized[sorted[j]]
	})

	assert.Equal(t, chronological, sorted)
}

func TestCompareDates(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{a: "5-3-2024", b: "2024-03-05", expected: 0},
		{a: "10-01-2025", b: "5-3-2024", expected: 1},
		{a: "31-12-2023", b: "1-1-2024", expected: -1},
		{a: "01-02-2024", b: "2-1-2024", expected: 1},
	}

	for _, tc := range testCases {
		got, err := CompareDates(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "%s vs %s", tc.a, tc.b)
	}

	_, err := CompareDates("31-02-2024", "01-01-2024")
	assert.ErrorIs(t, err, apperrors.ErrMalformed)
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("15-03-2025"))
	assert.True(t, IsDate("1-1-2000"))
	assert.False(t, IsDate("2025-03-15"))
	assert.False(t, IsDate("00-01-2025"))
	assert.False(t, IsDate(""))
}
