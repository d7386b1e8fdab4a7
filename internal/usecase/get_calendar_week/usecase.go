package get_calendar_week

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	scheduleCore "github.com/mlevasseur/salon-booking-service/internal/schedule"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

const weekDays = 7

// UseCase use case календаря администратора на неделю
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute собирает календарь на 7 дней начиная со StartDate: эффективное
// расписание каждого дня плюс бронирования дня, отсортированные по времени
// начала хранилищем. Завершенные бронирования показываются наравне с
// активными, отмененные - нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarWeek: start=%s", req.StartDate)

	start, err := types.NewDateString(req.StartDate)
	if err != nil {
		uc.logger.Warn("GetCalendarWeek: invalid start date %q: %v", req.StartDate, err)
		if errors.Is(err, types.ErrInvalidDateFormat) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	end := start.AddDays(weekDays - 1)

	recurring, err := uc.scheduleRepo.ListRecurringRules(ctx)
	if err != nil {
		uc.logger.Error("GetCalendarWeek: failed to list recurring rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list recurring rules: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverrides(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetCalendarWeek: failed to list overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate:   ptr.Ptr(start),
		EndDate:     ptr.Ptr(end),
		Statuses:    domain.CalendarStatuses,
		OldestFirst: true,
	})
	if err != nil {
		uc.logger.Error("GetCalendarWeek: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	bookingsByDate := make(map[types.DateString][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bookingsByDate[b.Date] = append(bookingsByDate[b.Date], b)
	}

	days := make([]CalendarDay, 0, weekDays)
	for _, day := range scheduleCore.ResolveRange(start, weekDays, recurring, overrides) {
		dayBookings := bookingsByDate[day.Date]
		if dayBookings == nil {
			dayBookings = []*domain.Booking{}
		}
		days = append(days, CalendarDay{
			Date:      day.Date,
			DayOfWeek: day.DayOfWeek,
			IsOpen:    day.IsOpen,
			Windows:   day.Windows,
			Source:    day.Source,
			Reason:    day.Reason,
			Bookings:  dayBookings,
		})
	}

	uc.logger.Info("GetCalendarWeek: %d bookings in week starting %s", len(bookings), start)

	return &Response{StartDate: start, Days: days}, nil
}
