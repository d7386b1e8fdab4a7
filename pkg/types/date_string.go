package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat is returned when a date string is not a valid YYYY-MM-DD value
var ErrInvalidDateFormat = errors.New("types: invalid date format, expected YYYY-MM-DD")

// DateString represents a naive calendar date as a "YYYY-MM-DD" string.
//
// All arithmetic parses the date at 12:00 UTC and steps whole UTC calendar
// days. Constructing a local-time Date and adding 24h increments silently
// skips or duplicates a day around DST transitions, so that approach is
// deliberately avoided everywhere in this package.
type DateString string

// NewDateString validates and returns a DateString
func NewDateString(s string) (DateString, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// DateOf returns the calendar date of the given instant
func DateOf(t time.Time) DateString {
	return DateString(t.Format("2006-01-02"))
}

// Tomorrow returns the calendar date one day after the given instant.
// The reference instant is a parameter so callers keep their injected clock.
func Tomorrow(now time.Time) DateString {
	return DateOf(now).AddDays(1)
}

// String returns the "YYYY-MM-DD" representation
func (d DateString) String() string {
	return string(d)
}

// NoonUTC returns the date anchored at 12:00 UTC, the fixed reference
// instant used for all calendar arithmetic
func (d DateString) NoonUTC() time.Time {
	parsed, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, time.UTC)
}

// DayOfWeek returns the weekday of the date, 0=Sunday .. 6=Saturday
func (d DateString) DayOfWeek() int {
	return int(d.NoonUTC().Weekday())
}

// AddDays returns the date shifted by n calendar days
func (d DateString) AddDays(n int) DateString {
	return DateOf(d.NoonUTC().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
// Lexicographic comparison is correct for zero-padded ISO dates.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// DateRange returns count consecutive calendar dates starting at start, inclusive
func DateRange(start DateString, count int) []DateString {
	dates := make([]DateString, 0, count)
	cursor := start.NoonUTC()
	for i := 0; i < count; i++ {
		dates = append(dates, DateOf(cursor))
		cursor = cursor.AddDate(0, 0, 1)
	}
	return dates
}
