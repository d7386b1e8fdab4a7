package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "seconds truncated", input: "09:30:45", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:75", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:15")

	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), shifted)

	shifted, err = ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), shifted)

	// Crossing midnight is not a valid time of day
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestNewDateString(t *testing.T) {
	d, err := NewDateString("2025-03-30")
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-03-30"), d)

	for _, bad := range []string{"2025-3-30", "30-03-2025", "2025-13-01", "2025-02-30", "not a date", ""} {
		_, err := NewDateString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestDateString_DayOfWeek(t *testing.T) {
	// 2025-10-05 is a Sunday
	assert.Equal(t, 0, DateString("2025-10-05").DayOfWeek())
	assert.Equal(t, 1, DateString("2025-10-06").DayOfWeek())
	assert.Equal(t, 6, DateString("2025-10-11").DayOfWeek())
}

func TestDateString_DayOfWeek_StableAcrossUTCHours(t *testing.T) {
	// The weekday derived from the fixed noon-UTC anchor must match the
	// weekday of the same calendar date evaluated at any UTC hour.
	d := DateString("2025-03-30") // European DST switch date
	parsed, err := time.Parse("2006-01-02", d.String())
	require.NoError(t, err)

	for hour := 0; hour < 24; hour++ {
		at := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), hour, 0, 0, 0, time.UTC)
		assert.Equal(t, int(at.Weekday()), d.DayOfWeek(), "hour %d", hour)
	}
}

func TestDateRange(t *testing.T) {
	dates := DateRange("2025-02-27", 4)

	require.Len(t, dates, 4)
	assert.Equal(t, DateString("2025-02-27"), dates[0])
	assert.Equal(t, []DateString{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)

	// Strictly increasing by exactly one calendar day
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDays(1), dates[i])
	}
}

func TestDateRange_AcrossDSTTransition(t *testing.T) {
	// 2025-03-30 is the CET->CEST switch; a local-time implementation
	// adding 24h increments would skip or duplicate a day here.
	dates := DateRange("2025-03-29", 3)
	assert.Equal(t, []DateString{"2025-03-29", "2025-03-30", "2025-03-31"}, dates)
}

func TestDateString_AddDays(t *testing.T) {
	assert.Equal(t, DateString("2025-01-01"), DateString("2024-12-31").AddDays(1))
	assert.Equal(t, DateString("2024-02-29"), DateString("2024-02-28").AddDays(1)) // leap year
	assert.Equal(t, DateString("2025-03-01"), DateString("2025-02-28").AddDays(1))
	assert.Equal(t, DateString("2025-10-01"), DateString("2025-10-08").AddDays(-7))
}

func TestTomorrow(t *testing.T) {
	assert.Equal(t, DateString("2025-10-06"),
		Tomorrow(time.Date(2025, 10, 5, 15, 30, 0, 0, time.UTC)))

	// Month and year boundaries follow calendar arithmetic
	assert.Equal(t, DateString("2025-11-01"),
		Tomorrow(time.Date(2025, 10, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2026-01-01"),
		Tomorrow(time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC)))
}

func TestDateString_Before(t *testing.T) {
	assert.True(t, DateString("2025-09-30").Before("2025-10-01"))
	assert.False(t, DateString("2025-10-01").Before("2025-10-01"))
}
