package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
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
	existing []*domain.Booking
	created  []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &stored)
	return &stored, nil
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

// fakeTxManager выполняет fn без транзакции и считает вызовы
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	requested []*domain.Booking
}

func (f *fakeNotifier) BookingRequested(b *domain.Booking) {
	f.requested = append(f.requested, b)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testClock = fixedClock{now: time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC)}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	tx       *fakeTxManager
	notifier *fakeNotifier
}

func newFixture(sched *fakeScheduleRepo, bookings *fakeBookingRepo) *fixture {
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Coupe", DurationMinutes: 30, PriceCents: 3500, IsActive: true},
		2: {ID: 2, Name: "Soin", DurationMinutes: 15, PriceCents: 1000, IsActive: true, IsAddon: true},
		3: {ID: 3, Name: "Ancienne", DurationMinutes: 30, PriceCents: 2000, IsActive: false},
	}}
	tx := &fakeTxManager{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(sched, bookings, services, tx, notifier, testClock, nopLogger{})
	return &fixture{uc: uc, bookings: bookings, tx: tx, notifier: notifier}
}

func mondayMorning() *fakeScheduleRepo {
	return &fakeScheduleRepo{recurring: []*domain.RecurringRule{
		// 2025-10-06 is a Monday
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}}
}

func validRequest() *Request {
	return &Request{
		ServiceID:     1,
		Date:          "2025-10-06",
		StartTime:     "09:30",
		CustomerName:  "Alice Martin",
		CustomerEmail: "alice@example.com",
	}
}

func TestExecute_CreatesPendingBookingWithToken(t *testing.T) {
	f := newFixture(mondayMorning(), &fakeBookingRepo{})

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.NotEmpty(t, b.Token)
	assert.Equal(t, "Coupe", b.ServiceName)
	assert.Equal(t, 3500, b.PriceCents)
	assert.Equal(t, 30, b.DurationMinutes)
	assert.Equal(t, types.DateString("2025-10-06"), b.Date)
	assert.Equal(t, types.TimeString("09:30"), b.StartTime)

	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.notifier.requested, 1)
	assert.Equal(t, b.ID, f.notifier.requested[0].ID)
}

func TestExecute_SlotTaken(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{Date: "2025-10-06", StartTime: "09:30", DurationMinutes: 30, Status: domain.StatusPending},
	}}
	f := newFixture(mondayMorning(), bookings)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, bookings.created)
	assert.Empty(t, f.notifier.requested)
}

func TestExecute_OverlapBlocksEvenWithoutExactMatch(t *testing.T) {
	// Запись 09:15-10:15 пересекает кандидата 09:30-10:00
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{Date: "2025-10-06", StartTime: "09:15", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}
	f := newFixture(mondayMorning(), bookings)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SalonClosed(t *testing.T) {
	sched := mondayMorning()
	sched.overrides = []*domain.ScheduleOverride{{Date: "2025-10-06", IsClosed: true}}
	f := newFixture(sched, &fakeBookingRepo{})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_TimeOutsideGrid(t *testing.T) {
	f := newFixture(mondayMorning(), &fakeBookingRepo{})

	req := validRequest()
	req.StartTime = "09:15"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotBookable)

	// Последний кандидат - 11:30: запись 11:45 не поместилась бы в окно
	req.StartTime = "11:45"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotBookable)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture(mondayMorning(), &fakeBookingRepo{})

	req := validRequest()
	req.Date = "2025-10-04"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_AddonNotBookable(t *testing.T) {
	f := newFixture(mondayMorning(), &fakeBookingRepo{})

	req := validRequest()
	req.ServiceID = 2
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotBookable)

	req.ServiceID = 3
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(mondayMorning(), &fakeBookingRepo{})

	cases := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty name", func(r *Request) { r.CustomerName = "   " }},
		{"bad email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"bad date", func(r *Request) { r.Date = "06.10.2025" }},
		{"bad time", func(r *Request) { r.StartTime = "9h30" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_TokensAreUnique(t *testing.T) {
	bookings := &fakeBookingRepo{}
	f := newFixture(mondayMorning(), bookings)

	first, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "10:00"
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Booking.Token, second.Booking.Token)
}
