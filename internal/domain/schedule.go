package domain

import (
	"time"

	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// RecurringRule is one weekly-repeating open window of the salon schedule.
// Several rules may exist for the same weekday (split shifts).
type RecurringRule struct {
	ID          int64
	DayOfWeek   int // 0 = Sunday .. 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScheduleOverride is a date-specific exception to the recurring schedule.
// Either the whole day is closed (IsClosed, times nil) or the row carries one
// custom open window; a date may have several custom-window rows.
type ScheduleOverride struct {
	ID        int64
	Date      types.DateString
	IsClosed  bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window is an open interval of operating hours within one day
type Window struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsConsistent reports whether the window is well-formed (start strictly
// before end). Malformed windows are skipped by the slot generator instead
// of failing the whole day.
func (w Window) IsConsistent() bool {
	return w.StartTime.IsBefore(w.EndTime)
}

// ScheduleSource tells which layer produced the effective day
type ScheduleSource string

const (
	SourceDefault  ScheduleSource = "default"
	SourceOverride ScheduleSource = "override"
)

// EffectiveDay is the resolved open/closed state and operating windows for
// one concrete calendar date, after override-over-recurring precedence.
// Computed on demand per request, never persisted.
type EffectiveDay struct {
	Date      types.DateString
	DayOfWeek int
	IsOpen    bool
	Windows   []Window
	Source    ScheduleSource
	Reason    *string
}
