package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	scheduleCore "github.com/mlevasseur/salon-booking-service/internal/schedule"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
)

// UseCase use case получения слотов записи на одну дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// Execute вычисляет все слоты даты с флагом доступности.
//
// Все данные читаются одним снимком в начале вызова: результат не может
// отразить запись, появившуюся после чтения. Закрытый день - пустой список,
// не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s", req.ServiceID, req.Date)

	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if svc.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: service id=%d has non-positive duration %d", svc.ID, svc.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	recurring, err := uc.scheduleRepo.ListRecurringRules(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list recurring rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list recurring rules: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverrides(ctx, date, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	day := scheduleCore.ResolveDay(date, recurring, overrides)
	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: salon closed on %s (source=%s)", date, day.Source)
		return &Response{
			Date:            date,
			ServiceID:       svc.ID,
			DurationMinutes: svc.DurationMinutes,
			Slots:           []domain.Slot{},
		}, nil
	}

	// Слот занимают только pending и confirmed
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(date),
		EndDate:   ptr.Ptr(date),
		Statuses:  domain.BlockingStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	candidates := scheduleCore.GenerateSlots(day.Windows, svc.DurationMinutes)
	slots := scheduleCore.MarkAvailability(candidates, bookings, svc.DurationMinutes)

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, date=%s", len(slots), svc.ID, date)

	return &Response{
		Date:            date,
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
	}, nil
}
