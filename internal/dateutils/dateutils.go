// Package dateutils provides calendar-day date operations used throughout the application.
//
// All budget dates are day-granular. They are stored as YYYY-MM-DD strings and
// compared as calendar days, never as instants, so a transaction dated on the
// last day of a month can never drift into the adjacent month because of a
// time-zone offset.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the canonical storage layout for budget dates (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// CommonFormats is a list of additional formats to try when parsing dates
// coming from user input or AI responses.
var CommonFormats = []string{
	DateLayoutISO,
	"02.01.2006",
	"01/02/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDay parses a date string into a calendar day. The time component and
// location of the returned value are meaningless; only Year/Month/Day are.
func ParseDay(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDay formats a time value as a canonical YYYY-MM-DD string.
func FormatDay(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// StartOfMonth returns the first calendar day of the given month.
func StartOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of the given month.
func EndOfMonth(year, month int) time.Time {
	return StartOfMonth(year, month).AddDate(0, 1, -1)
}

// InMonth reports whether the date string falls inside the given calendar
// month, both boundary days included. Unparsable dates are never in a month.
func InMonth(dateStr string, year, month int) bool {
	t, err := ParseDay(dateStr)
	if err != nil {
		return false
	}
	return t.Year() == year && int(t.Month()) == month
}

// CompareDays orders two calendar days: -1 if a is before b, 0 if they are the
// same day, 1 if a is after b.
func CompareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// InRange reports whether the date string falls inside the closed calendar-day
// range [from, to]. An empty from or to leaves that end open.
func InRange(dateStr, from, to string) (bool, error) {
	day, err := ParseDay(dateStr)
	if err != nil {
		return false, err
	}
	if from != "" {
		f, err := ParseDay(from)
		if err != nil {
			return false, fmt.Errorf("invalid range start: %w", err)
		}
		if CompareDays(day, f) < 0 {
			return false, nil
		}
	}
	if to != "" {
		t, err := ParseDay(to)
		if err != nil {
			return false, fmt.Errorf("invalid range end: %w", err)
		}
		if CompareDays(day, t) > 0 {
			return false, nil
		}
	}
	return true, nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
