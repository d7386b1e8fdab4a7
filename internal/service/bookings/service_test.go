package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	bookingRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/booking"
	"github.com/mlevasseur/salon-booking-service/internal/service/bookings/models"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByToken(_ context.Context, token string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Token == token {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	matched := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StartDate != nil && b.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && filter.EndDate.Before(b.Date) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, b.Status) {
			continue
		}
		if filter.ServiceID != nil && b.ServiceID != *filter.ServiceID {
			continue
		}
		copied := *b
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (f *fakeBookingRepo) CountWithFilter(ctx context.Context, filter domain.BookingsFilter) (int, error) {
	matched, _ := f.ListWithFilter(ctx, filter)
	return len(matched), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	return nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, id int64, date types.DateString, startTime types.TimeString) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Date = date
	b.StartTime = startTime
	return nil
}

func containsStatus(statuses []domain.BookingStatus, s domain.BookingStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	confirmed   []int64
	cancelled   []int64
	rescheduled []int64
}

func (f *fakeNotifier) BookingConfirmed(b *domain.Booking) {
	f.confirmed = append(f.confirmed, b.ID)
}

func (f *fakeNotifier) BookingCancelled(b *domain.Booking) {
	f.cancelled = append(f.cancelled, b.ID)
}

func (f *fakeNotifier) BookingRescheduled(b *domain.Booking) {
	f.rescheduled = append(f.rescheduled, b.ID)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testClock = fixedClock{now: time.Date(2025, 10, 6, 10, 0, 0, 0, time.UTC)}

func newTestService(repo *fakeBookingRepo, sched *fakeScheduleRepo, notifier *fakeNotifier) *Service {
	return NewService(repo, sched, fakeTxManager{}, notifier, testClock, nopLogger{})
}

func allWeekdays(start, end types.TimeString) []*domain.RecurringRule {
	rules := make([]*domain.RecurringRule, 0, 7)
	for dow := 0; dow < 7; dow++ {
		rules = append(rules, &domain.RecurringRule{
			DayOfWeek: dow, StartTime: start, EndTime: end, IsAvailable: true,
		})
	}
	return rules
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID: id, ServiceID: 1, CustomerName: "Alice", CustomerEmail: "alice@example.com",
		Date: "2025-10-07", StartTime: "10:00", DurationMinutes: 30,
		Status: domain.StatusPending, Token: "tok-pending",
	}
}

func TestGetByToken(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, &fakeScheduleRepo{}, &fakeNotifier{})

	resp, err := svc.GetByToken(context.Background(), "tok-pending")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByToken(context.Background(), "tok-unknown")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelByToken(t *testing.T) {
	reason := "Empêchement"
	repo := newFakeBookingRepo(pendingBooking(1))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, &fakeScheduleRepo{}, notifier)

	resp, err := svc.CancelByToken(context.Background(), "tok-pending", &models.CancelBookingRequest{
		CancellationReason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, reason, *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
	assert.Equal(t, []int64{1}, notifier.cancelled)
}

func TestCancelByToken_FinalStateRejected(t *testing.T) {
	done := pendingBooking(1)
	done.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(done)
	svc := newTestService(repo, &fakeScheduleRepo{}, &fakeNotifier{})

	_, err := svc.CancelByToken(context.Background(), "tok-pending", &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name      string
		from      domain.BookingStatus
		to        string
		wantErr   error
		confirmed bool
		cancelled bool
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed", confirmed: true},
		{name: "pending to cancelled", from: domain.StatusPending, to: "cancelled", cancelled: true},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "confirmed to cancelled", from: domain.StatusConfirmed, to: "cancelled", cancelled: true},
		{name: "pending to completed rejected", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "completed to confirmed rejected", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "cancelled to confirmed rejected", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "target pending rejected", from: domain.StatusConfirmed, to: "pending", wantErr: ErrInvalidTransition},
		{name: "unknown status rejected", from: domain.StatusPending, to: "archived", wantErr: ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := pendingBooking(1)
			b.Status = tc.from
			repo := newFakeBookingRepo(b)
			notifier := &fakeNotifier{}
			svc := newTestService(repo, &fakeScheduleRepo{}, notifier)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tc.to})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.to, resp.Status)
			if tc.confirmed {
				assert.Equal(t, []int64{1}, notifier.confirmed)
			}
			if tc.cancelled {
				assert.Equal(t, []int64{1}, notifier.cancelled)
			}
		})
	}
}

func TestReschedule(t *testing.T) {
	sched := &fakeScheduleRepo{recurring: allWeekdays("09:00", "18:00")}
	b := pendingBooking(1)
	b.Status = domain.StatusConfirmed
	repo := newFakeBookingRepo(b)
	notifier := &fakeNotifier{}
	svc := newTestService(repo, sched, notifier)

	resp, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		Date: "2025-10-08", StartTime: "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-08", resp.Date)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, []int64{1}, notifier.rescheduled)
}

func TestReschedule_OwnSlotDoesNotConflict(t *testing.T) {
	sched := &fakeScheduleRepo{recurring: allWeekdays("09:00", "18:00")}
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, sched, &fakeNotifier{})

	// Сдвиг на полшага внутри собственного интервала не конфликтует с собой
	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		Date: "2025-10-07", StartTime: "10:00",
	})
	assert.NoError(t, err)
}

func TestReschedule_SlotTaken(t *testing.T) {
	sched := &fakeScheduleRepo{recurring: allWeekdays("09:00", "18:00")}
	other := &domain.Booking{
		ID: 2, Date: "2025-10-08", StartTime: "14:00", DurationMinutes: 60,
		Status: domain.StatusConfirmed, Token: "tok-other",
	}
	repo := newFakeBookingRepo(pendingBooking(1), other)
	svc := newTestService(repo, sched, &fakeNotifier{})

	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		Date: "2025-10-08", StartTime: "14:30",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReschedule_ClosedAndOffGrid(t *testing.T) {
	sched := &fakeScheduleRepo{
		recurring: allWeekdays("09:00", "18:00"),
		overrides: []*domain.ScheduleOverride{{Date: "2025-10-09", IsClosed: true}},
	}
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, sched, &fakeNotifier{})

	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		Date: "2025-10-09", StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSalonClosed)

	_, err = svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		Date: "2025-10-08", StartTime: "10:10",
	})
	assert.ErrorIs(t, err, ErrSlotNotBookable)
}

func TestReschedule_FinalStateRejected(t *testing.T) {
	b := pendingBooking(1)
	b.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeScheduleRepo{}, &fakeNotifier{})

	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		Date: "2025-10-08", StartTime: "14:00",
	})
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestStats(t *testing.T) {
	// Часы зафиксированы на 2025-10-06
	repo := newFakeBookingRepo(
		&domain.Booking{ID: 1, Date: "2025-10-06", StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusConfirmed, Token: "a"},
		&domain.Booking{ID: 2, Date: "2025-10-07", StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusPending, Token: "b"},
		&domain.Booking{ID: 3, Date: "2025-10-08", StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusConfirmed, Token: "c"},
		&domain.Booking{ID: 4, Date: "2025-10-01", StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusCompleted, Token: "d"},
		&domain.Booking{ID: 5, Date: "2025-10-02", StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusCancelled, Token: "e"},
	)
	svc := newTestService(repo, &fakeScheduleRepo{}, &fakeNotifier{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.TodayCount)
	assert.Equal(t, 2, stats.UpcomingCount)
	assert.Equal(t, 5, stats.TotalCount)

	require.NotNil(t, stats.NextPending)
	assert.Equal(t, int64(2), stats.NextPending.ID)
	require.NotNil(t, stats.NextUpcoming)
	assert.Equal(t, int64(3), stats.NextUpcoming.ID)
}
