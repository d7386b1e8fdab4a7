package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	scheduleCore "github.com/mlevasseur/salon-booking-service/internal/schedule"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// UseCase use case создания бронирования клиентом
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TxManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TxManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создает бронирование в статусе pending.
//
// Проверка занятости и вставка выполняются в одной SERIALIZABLE транзакции:
// выборка бронирований даты блокирует строки, поэтому два конкурентных
// запроса на один слот не могут пройти проверку одновременно - второй
// получит ErrSlotTaken или конфликт сериализации.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s", req.ServiceID, req.Date, req.StartTime)

	date, startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if date.Before(types.DateOf(uc.timeProvider.Now())) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date)
		return nil, ErrDateInPast
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !svc.CanBeBookedDirectly() {
		uc.logger.Warn("CreateBooking: service id=%d is not directly bookable", svc.ID)
		return nil, ErrServiceNotBookable
	}

	var created *domain.Booking
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err = uc.createInTx(txCtx, req, svc, date, startTime)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notifier.BookingRequested(created)
	uc.logger.Info("CreateBooking: created booking id=%d token=%s", created.ID, created.Token)

	return &Response{Booking: created}, nil
}

// createInTx проверяет доступность слота и вставляет бронирование.
// Вызывается только внутри транзакции.
func (uc *UseCase) createInTx(ctx context.Context, req *Request, svc *domain.Service, date types.DateString, startTime types.TimeString) (*domain.Booking, error) {
	recurring, err := uc.scheduleRepo.ListRecurringRules(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list recurring rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list recurring rules: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverrides(ctx, date, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	day := scheduleCore.ResolveDay(date, recurring, overrides)
	if !day.IsOpen {
		uc.logger.Warn("CreateBooking: salon closed on %s", date)
		return nil, ErrSalonClosed
	}

	candidates := scheduleCore.GenerateSlots(day.Windows, svc.DurationMinutes)
	if !containsTime(candidates, startTime) {
		uc.logger.Warn("CreateBooking: %s is not a valid slot start on %s", startTime, date)
		return nil, ErrSlotNotBookable
	}

	// Выборка одной даты внутри транзакции выполняется с FOR UPDATE
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(date),
		EndDate:   ptr.Ptr(date),
		Statuses:  domain.BlockingStatuses,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	for _, slot := range scheduleCore.MarkAvailability(candidates, bookings, svc.DurationMinutes) {
		if slot.Time == startTime && !slot.Available {
			uc.logger.Warn("CreateBooking: slot %s %s already booked", date, startTime)
			return nil, ErrSlotTaken
		}
	}

	booking := &domain.Booking{
		ServiceID:       svc.ID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   req.CustomerPhone,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: svc.DurationMinutes,
		Status:          domain.StatusPending,
		ServiceName:     svc.Name,
		PriceCents:      svc.PriceCents,
		Token:           uuid.NewString(),
		Notes:           req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}

func containsTime(candidates []types.TimeString, t types.TimeString) bool {
	for _, c := range candidates {
		if c == t {
			return true
		}
	}
	return false
}
