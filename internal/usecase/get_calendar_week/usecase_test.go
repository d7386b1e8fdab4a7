package get_calendar_week

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

type fakeScheduleRepo struct {
	recurring []*domain.RecurringRule
	overrides []*domain.ScheduleOverride
}

func (f *fakeScheduleRepo) ListRecurringRules(_ context.Context) ([]*domain.RecurringRule, error) {
	return f.recurring, nil
}

func (f *fakeScheduleRepo) ListOverrides(_ context.Context, _, _ types.DateString) ([]*domain.ScheduleOverride, error) {
	return f.overrides, nil
}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_SevenDaysWithBookings(t *testing.T) {
	sched := &fakeScheduleRepo{
		recurring: []*domain.RecurringRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
			{DayOfWeek: 3, StartTime: "10:00", EndTime: "16:00", IsAvailable: true},
		},
	}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Date: "2025-10-06", StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed, CustomerName: "Alice", ServiceName: "Coupe"},
		{ID: 2, Date: "2025-10-06", StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusCompleted, CustomerName: "Bob", ServiceName: "Couleur"},
		{ID: 3, Date: "2025-10-08", StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusPending, CustomerName: "Chloé", ServiceName: "Brushing"},
	}}

	uc := NewUseCase(sched, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: "2025-10-06"})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, types.DateString("2025-10-06"), resp.Days[0].Date)
	assert.Equal(t, types.DateString("2025-10-12"), resp.Days[6].Date)

	// Понедельник: открыт, два бронирования, включая завершенное
	monday := resp.Days[0]
	assert.True(t, monday.IsOpen)
	require.Len(t, monday.Bookings, 2)
	assert.Equal(t, domain.StatusCompleted, monday.Bookings[1].Status)

	// Вторник: закрыт по недельному расписанию, бронирований нет
	tuesday := resp.Days[1]
	assert.False(t, tuesday.IsOpen)
	assert.Empty(t, tuesday.Bookings)

	wednesday := resp.Days[2]
	require.Len(t, wednesday.Bookings, 1)
	assert.Equal(t, "Chloé", wednesday.Bookings[0].CustomerName)

	// Календарь запрашивает и завершенные бронирования
	assert.Equal(t, domain.CalendarStatuses, bookings.lastFilter.Statuses)
	assert.True(t, bookings.lastFilter.OldestFirst)
}

func TestExecute_OverrideShownWithReason(t *testing.T) {
	reason := "Jour férié"
	sched := &fakeScheduleRepo{
		recurring: []*domain.RecurringRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
		},
		overrides: []*domain.ScheduleOverride{
			{Date: "2025-10-06", IsClosed: true, Reason: &reason},
		},
	}

	uc := NewUseCase(sched, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: "2025-10-06"})
	require.NoError(t, err)

	monday := resp.Days[0]
	assert.False(t, monday.IsOpen)
	assert.Equal(t, domain.SourceOverride, monday.Source)
	require.NotNil(t, monday.Reason)
	assert.Equal(t, reason, *monday.Reason)
}

func TestExecute_InvalidStartDate(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartDate: "next monday"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
