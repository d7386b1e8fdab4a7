package get_open_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	scheduleCore "github.com/mlevasseur/salon-booking-service/internal/schedule"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// UseCase use case поиска дат со свободными слотами
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute сканирует ближайшие даты начиная с завтрашнего дня и возвращает
// открытые даты с признаком наличия свободного слота для услуги. Закрытые
// даты в ответ не попадают.
//
// Расписание и бронирования читаются одним снимком на весь диапазон - по
// одному обращению к хранилищу на сущность, а не по одному на дату. На каждой
// дате достаточно найти первый свободный слот, полный перебор не выполняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOpenDates: service=%d, days=%d", req.ServiceID, req.Days)

	days, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetOpenDates: validation failed: %v", err)
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetOpenDates: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetOpenDates: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if svc.DurationMinutes <= 0 {
		uc.logger.Warn("GetOpenDates: service id=%d has non-positive duration %d", svc.ID, svc.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// Сканирование начинается с завтрашнего дня: на сегодня запись невозможна
	start := types.Tomorrow(uc.timeProvider.Now())
	end := start.AddDays(days - 1)

	recurring, err := uc.scheduleRepo.ListRecurringRules(ctx)
	if err != nil {
		uc.logger.Error("GetOpenDates: failed to list recurring rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list recurring rules: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverrides(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetOpenDates: failed to list overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(start),
		EndDate:   ptr.Ptr(end),
		Statuses:  domain.BlockingStatuses,
	})
	if err != nil {
		uc.logger.Error("GetOpenDates: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	bookingsByDate := make(map[types.DateString][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bookingsByDate[b.Date] = append(bookingsByDate[b.Date], b)
	}

	dates := make([]OpenDate, 0)
	withSlots := 0
	for _, day := range scheduleCore.ResolveRange(start, days, recurring, overrides) {
		if !day.IsOpen {
			continue
		}
		hasSlots := scheduleCore.HasOpenSlot(day.Windows, bookingsByDate[day.Date], svc.DurationMinutes)
		if hasSlots {
			withSlots++
		}
		dates = append(dates, OpenDate{
			Date:              day.Date,
			IsOpen:            true,
			HasAvailableSlots: hasSlots,
		})
	}

	uc.logger.Info("GetOpenDates: %d open dates (%d with free slots) of %d scanned for service=%d",
		len(dates), withSlots, days, svc.ID)

	return &Response{
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		StartDate:       start,
		Days:            days,
		Dates:           dates,
	}, nil
}
