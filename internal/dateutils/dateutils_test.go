package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2025-10-15", "2025-10-15"},
		{"15.10.2025", "2025-10-15"},
		{"10/15/2025", "2025-10-15"},
		{"2025/10/15", "2025-10-15"},
		{"15-Oct-2025", "2025-10-15"},
		{"Oct 15, 2025", "2025-10-15"},
		{"October 15, 2025", "2025-10-15"},
		{"  2025-10-15  ", "2025-10-15"},
	}
	for _, tc := range tests {
		day, err := ParseDay(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, FormatDay(day), "input %q", tc.input)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2025-13-01", "32.01.2025"} {
		_, err := ParseDay(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestInMonth_Boundaries(t *testing.T) {
	assert.True(t, InMonth("2025-10-01", 2025, 10))
	assert.True(t, InMonth("2025-10-31", 2025, 10))
	assert.False(t, InMonth("2025-09-30", 2025, 10))
	assert.False(t, InMonth("2025-11-01", 2025, 10))
}

func TestInMonth_UnparsableNeverMatches(t *testing.T) {
	assert.False(t, InMonth("garbage", 2025, 10))
	assert.False(t, InMonth("", 2025, 10))
}

func TestStartAndEndOfMonth(t *testing.T) {
	assert.Equal(t, "2025-10-01", FormatDay(StartOfMonth(2025, 10)))
	assert.Equal(t, "2025-10-31", FormatDay(EndOfMonth(2025, 10)))
	assert.Equal(t, "2024-02-29", FormatDay(EndOfMonth(2024, 2)))
	assert.Equal(t, "2025-02-28", FormatDay(EndOfMonth(2025, 2)))
	assert.Equal(t, "2025-12-31", FormatDay(EndOfMonth(2025, 12)))
}

func TestCompareDays(t *testing.T) {
	a := time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 10, 15, 0, 1, 0, 0, time.FixedZone("X", -5*3600))

	// Same calendar day regardless of time or zone
	assert.Equal(t, 0, CompareDays(a, b))
	assert.Equal(t, -1, CompareDays(StartOfMonth(2025, 10), StartOfMonth(2025, 11)))
	assert.Equal(t, 1, CompareDays(StartOfMonth(2026, 1), StartOfMonth(2025, 12)))
}

func TestInRange(t *testing.T) {
	in, err := InRange("2025-10-15", "2025-10-01", "2025-10-31")
	require.NoError(t, err)
	assert.True(t, in)

	// Closed range: both ends inclusive
	in, err = InRange("2025-10-01", "2025-10-01", "2025-10-31")
	require.NoError(t, err)
	assert.True(t, in)
	in, err = InRange("2025-10-31", "2025-10-01", "2025-10-31")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = InRange("2025-11-01", "2025-10-01", "2025-10-31")
	require.NoError(t, err)
	assert.False(t, in)

	// Open ends
	in, err = InRange("1999-01-01", "", "2025-10-31")
	require.NoError(t, err)
	assert.True(t, in)
	in, err = InRange("2099-01-01", "2025-10-01", "")
	require.NoError(t, err)
	assert.True(t, in)
}

func TestInRange_BadInputs(t *testing.T) {
	_, err := InRange("garbage", "2025-10-01", "")
	assert.Error(t, err)
	_, err = InRange("2025-10-15", "garbage", "")
	assert.Error(t, err)
	_, err = InRange("2025-10-15", "", "garbage")
	assert.Error(t, err)
}
