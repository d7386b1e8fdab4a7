package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat is returned when a time string is not a valid HH:MM value
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

const minutesPerDay = 24 * 60

// TimeString represents a time of day as a zero-padded 24h "HH:MM" string.
// Seconds, if present in the input, are truncated.
type TimeString string

// NewTimeString creates a TimeString from a time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses an "HH:MM" or "HH:MM:SS" string.
// A seconds component is truncated, never rounded.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(parsed.Format("15:04")), nil
}

// TimeStringFromMinutes creates a TimeString from minutes since midnight
func TimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is outside the day", ErrInvalidTimeFormat, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
// The value is only meaningful for a TimeString built via one of the constructors.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes returns the time shifted forward by m minutes.
// Fails if the result leaves the current day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	return TimeStringFromMinutes(t.Minutes() + m)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}
