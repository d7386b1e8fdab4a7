package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
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

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(sched *fakeScheduleRepo, bookings *fakeBookingRepo, services *fakeServiceRepo) *UseCase {
	return NewUseCase(sched, bookings, services, nopLogger{})
}

func cut30() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Coupe", DurationMinutes: 30, IsActive: true},
	}}
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	sched := &fakeScheduleRepo{recurring: []*domain.RecurringRule{
		// 2025-10-06 is a Monday
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", IsAvailable: true},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "09:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}}

	uc := newTestUseCase(sched, bookings, cut30())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-06", ServiceID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, domain.Slot{Time: "09:00", Available: true}, resp.Slots[0])
	assert.Equal(t, domain.Slot{Time: "09:30", Available: false}, resp.Slots[1])
	assert.Equal(t, domain.Slot{Time: "10:00", Available: true}, resp.Slots[2])

	// Только блокирующие статусы запрашиваются у хранилища
	assert.Equal(t, domain.BlockingStatuses, bookings.lastFilter.Statuses)
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	sched := &fakeScheduleRepo{
		recurring: []*domain.RecurringRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
		},
		overrides: []*domain.ScheduleOverride{
			{Date: "2025-10-06", IsClosed: true, Reason: ptr.Ptr("Vacances")},
		},
	}

	uc := newTestUseCase(sched, &fakeBookingRepo{}, cut30())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-06", ServiceID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, cut30())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-10-06", ServiceID: 99})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, cut30())

	_, err := uc.Execute(context.Background(), &Request{Date: "06/10/2025", ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidDuration(t *testing.T) {
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Broken", DurationMinutes: 0, IsActive: true},
	}}
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, services)

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-10-06", ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_Idempotent(t *testing.T) {
	sched := &fakeScheduleRepo{recurring: []*domain.RecurringRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusPending},
	}}
	uc := newTestUseCase(sched, bookings, cut30())

	first, err := uc.Execute(context.Background(), &Request{Date: "2025-10-06", ServiceID: 1})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: "2025-10-06", ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
