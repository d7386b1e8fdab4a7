package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// 2025-10-06 is a Monday
const monday = types.DateString("2025-10-06")

func mondayRule(start, end string) *domain.RecurringRule {
	return &domain.RecurringRule{
		DayOfWeek:   1,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: true,
	}
}

func TestResolveDay_RecurringFallback(t *testing.T) {
	recurring := []*domain.RecurringRule{
		mondayRule("09:00", "12:00"),
		mondayRule("14:00", "18:00"),
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00", IsAvailable: true}, // Tuesday, must not apply
	}

	day := ResolveDay(monday, recurring, nil)

	assert.Equal(t, monday, day.Date)
	assert.Equal(t, 1, day.DayOfWeek)
	assert.True(t, day.IsOpen)
	assert.Equal(t, domain.SourceDefault, day.Source)
	require.Len(t, day.Windows, 2)
	assert.Equal(t, domain.Window{StartTime: "09:00", EndTime: "12:00"}, day.Windows[0])
	assert.Equal(t, domain.Window{StartTime: "14:00", EndTime: "18:00"}, day.Windows[1])
}

func TestResolveDay_UnavailableRecurringRuleIgnored(t *testing.T) {
	recurring := []*domain.RecurringRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: false},
	}

	day := ResolveDay(monday, recurring, nil)

	assert.False(t, day.IsOpen)
	assert.Empty(t, day.Windows)
	assert.Equal(t, domain.SourceDefault, day.Source)
}

func TestResolveDay_ClosedOverrideWinsOverRecurring(t *testing.T) {
	recurring := []*domain.RecurringRule{mondayRule("09:00", "17:00")}
	overrides := []*domain.ScheduleOverride{
		{Date: monday, IsClosed: true, Reason: ptr.Ptr("Jour férié")},
	}

	day := ResolveDay(monday, recurring, overrides)

	assert.False(t, day.IsOpen)
	assert.Empty(t, day.Windows)
	assert.Equal(t, domain.SourceOverride, day.Source)
	require.NotNil(t, day.Reason)
	assert.Equal(t, "Jour férié", *day.Reason)
}

func TestResolveDay_AnyClosedRowClosesWholeDay(t *testing.T) {
	overrides := []*domain.ScheduleOverride{
		{Date: monday, StartTime: ptr.Ptr(types.TimeString("10:00")), EndTime: ptr.Ptr(types.TimeString("12:00"))},
		{Date: monday, IsClosed: true, Reason: ptr.Ptr("Vacances")},
	}

	day := ResolveDay(monday, []*domain.RecurringRule{mondayRule("09:00", "17:00")}, overrides)

	assert.False(t, day.IsOpen)
	assert.Empty(t, day.Windows)
	require.NotNil(t, day.Reason)
	assert.Equal(t, "Vacances", *day.Reason)
}

func TestResolveDay_OpenOverrideReplacesRecurring(t *testing.T) {
	// Override 10:00-12:00 fully replaces the recurring window 09:00-18:00,
	// no merging of the two sources.
	recurring := []*domain.RecurringRule{mondayRule("09:00", "18:00")}
	overrides := []*domain.ScheduleOverride{
		{Date: monday, StartTime: ptr.Ptr(types.TimeString("10:00")), EndTime: ptr.Ptr(types.TimeString("12:00"))},
	}

	day := ResolveDay(monday, recurring, overrides)

	assert.True(t, day.IsOpen)
	assert.Equal(t, domain.SourceOverride, day.Source)
	require.Len(t, day.Windows, 1)
	assert.Equal(t, domain.Window{StartTime: "10:00", EndTime: "12:00"}, day.Windows[0])
}

func TestResolveDay_MultipleOverrideWindows(t *testing.T) {
	overrides := []*domain.ScheduleOverride{
		{Date: monday, StartTime: ptr.Ptr(types.TimeString("09:00")), EndTime: ptr.Ptr(types.TimeString("11:00"))},
		{Date: monday, StartTime: ptr.Ptr(types.TimeString("15:00")), EndTime: ptr.Ptr(types.TimeString("19:00"))},
		{Date: "2025-10-07", StartTime: ptr.Ptr(types.TimeString("08:00")), EndTime: ptr.Ptr(types.TimeString("09:00"))}, // other date
	}

	day := ResolveDay(monday, nil, overrides)

	assert.True(t, day.IsOpen)
	require.Len(t, day.Windows, 2)
	assert.Equal(t, domain.Window{StartTime: "09:00", EndTime: "11:00"}, day.Windows[0])
	assert.Equal(t, domain.Window{StartTime: "15:00", EndTime: "19:00"}, day.Windows[1])
}

func TestResolveDay_NoRulesAtAll(t *testing.T) {
	day := ResolveDay(monday, nil, nil)

	assert.False(t, day.IsOpen)
	assert.Empty(t, day.Windows)
	assert.Equal(t, domain.SourceDefault, day.Source)
	assert.Nil(t, day.Reason)
}

func TestResolveRange(t *testing.T) {
	recurring := []*domain.RecurringRule{mondayRule("09:00", "17:00")}
	overrides := []*domain.ScheduleOverride{
		{Date: "2025-10-07", IsClosed: true}, // Tuesday closed by override
	}

	days := ResolveRange(monday, 3, recurring, overrides)

	require.Len(t, days, 3)

	assert.Equal(t, monday, days[0].Date)
	assert.True(t, days[0].IsOpen)
	assert.Equal(t, domain.SourceDefault, days[0].Source)

	assert.Equal(t, types.DateString("2025-10-07"), days[1].Date)
	assert.False(t, days[1].IsOpen)
	assert.Equal(t, domain.SourceOverride, days[1].Source)

	assert.Equal(t, types.DateString("2025-10-08"), days[2].Date)
	assert.False(t, days[2].IsOpen) // no recurring rule for Wednesday
}

func TestResolveDay_Idempotent(t *testing.T) {
	recurring := []*domain.RecurringRule{mondayRule("09:00", "17:00")}
	overrides := []*domain.ScheduleOverride{
		{Date: monday, StartTime: ptr.Ptr(types.TimeString("10:00")), EndTime: ptr.Ptr(types.TimeString("12:00"))},
	}

	first := ResolveDay(monday, recurring, overrides)
	second := ResolveDay(monday, recurring, overrides)

	assert.Equal(t, first, second)
}
