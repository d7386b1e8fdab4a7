package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	bookingRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/booking"
	scheduleCore "github.com/mlevasseur/salon-booking-service/internal/schedule"
	"github.com/mlevasseur/salon-booking-service/internal/service/bookings/models"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByToken получает бронирование по клиентскому токену.
// Токен выдается при создании и заменяет аккаунт.
func (s *Service) GetByToken(ctx context.Context, token string) (*models.BookingResponse, error) {
	s.logger.Info("GetByToken: fetching booking")

	booking, err := s.getByToken(ctx, token, "GetByToken")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// CancelByToken отменяет бронирование по клиентскому токену.
// Отменить можно только pending или confirmed бронирование.
func (s *Service) CancelByToken(ctx context.Context, token string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("CancelByToken: cancelling booking")

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var cancelled *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getByToken(txCtx, token, "CancelByToken")
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("CancelByToken: booking id=%d cannot be cancelled, status=%s", booking.ID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, booking.ID, req.CancellationReason); err != nil {
			s.logger.Error("CancelByToken: repository error for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
		}

		cancelled, err = s.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			s.logger.Error("CancelByToken: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: CancelByToken - failed to reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingCancelled(cancelled)
	s.logger.Info("CancelByToken: successfully cancelled booking id=%d", cancelled.ID)

	return models.FromDomainBooking(cancelled), nil
}

// List получает бронирования с гибкой фильтрацией по периоду, статусу и услуге.
// Доступно только администратору.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v, serviceID=%v", req.Status, req.ServiceID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования администратором.
// Допустимые переходы: pending -> confirmed/cancelled,
// confirmed -> completed/cancelled. Остальные отклоняются.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	var updated *domain.Booking
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getByID(txCtx, bookingID, "UpdateStatus")
		if err != nil {
			return err
		}

		if err := checkTransition(booking, newStatus); err != nil {
			s.logger.Warn("UpdateStatus: booking id=%d transition %s -> %s rejected", bookingID, booking.Status, newStatus)
			return err
		}

		if newStatus == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(txCtx, bookingID, nil)
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus)
		}
		if err != nil {
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		updated, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - failed to reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	switch newStatus {
	case domain.StatusConfirmed:
		s.notifier.BookingConfirmed(updated)
	case domain.StatusCancelled:
		s.notifier.BookingCancelled(updated)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

// Reschedule переносит бронирование на другую дату или время.
// Проверка занятости нового слота и запись выполняются в одной SERIALIZABLE
// транзакции, как при создании бронирования. Само переносимое бронирование
// в проверке конфликтов не участвует - перенос внутри своего же интервала
// допустим.
func (s *Service) Reschedule(ctx context.Context, bookingID int64, req *models.RescheduleRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reschedule: moving booking id=%d to %s %s", bookingID, req.Date, req.StartTime)

	date, err := types.NewDateString(req.Date)
	if err != nil {
		s.logger.Warn("Reschedule: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		s.logger.Warn("Reschedule: invalid time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	var moved *domain.Booking
	txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getByID(txCtx, bookingID, "Reschedule")
		if err != nil {
			return err
		}

		if !booking.CanBeRescheduled() {
			s.logger.Warn("Reschedule: booking id=%d cannot be rescheduled, status=%s", bookingID, booking.Status)
			return ErrCannotReschedule
		}

		if err := s.checkSlotFree(txCtx, booking, date, startTime); err != nil {
			return err
		}

		if err := s.bookingRepo.Reschedule(txCtx, bookingID, date, startTime); err != nil {
			s.logger.Error("Reschedule: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		moved, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			s.logger.Error("Reschedule: failed to reload booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Reschedule - failed to reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notifier.BookingRescheduled(moved)
	s.logger.Info("Reschedule: successfully moved booking id=%d to %s %s", bookingID, date, startTime)

	return models.FromDomainBooking(moved), nil
}

// Stats собирает сводку для панели администратора
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: collecting dashboard counters")

	now := s.timeProvider.Now()
	today := types.DateOf(now)
	tomorrow := types.Tomorrow(now)

	pendingCount, err := s.count(ctx, domain.BookingsFilter{
		Statuses: []domain.BookingStatus{domain.StatusPending},
	}, "pending")
	if err != nil {
		return nil, err
	}

	todayCount, err := s.count(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(today),
		EndDate:   ptr.Ptr(today),
		Statuses:  domain.BlockingStatuses,
	}, "today")
	if err != nil {
		return nil, err
	}

	upcomingCount, err := s.count(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(tomorrow),
		Statuses:  domain.BlockingStatuses,
	}, "upcoming")
	if err != nil {
		return nil, err
	}

	totalCount, err := s.count(ctx, domain.BookingsFilter{}, "total")
	if err != nil {
		return nil, err
	}

	resp := &models.StatsResponse{
		PendingCount:  pendingCount,
		TodayCount:    todayCount,
		UpcomingCount: upcomingCount,
		TotalCount:    totalCount,
	}

	nextPending, err := s.first(ctx, domain.BookingsFilter{
		StartDate:   ptr.Ptr(today),
		Statuses:    []domain.BookingStatus{domain.StatusPending},
		OldestFirst: true,
	}, "next pending")
	if err != nil {
		return nil, err
	}
	resp.NextPending = models.FromDomainBooking(nextPending)

	nextUpcoming, err := s.first(ctx, domain.BookingsFilter{
		StartDate:   ptr.Ptr(tomorrow),
		Statuses:    []domain.BookingStatus{domain.StatusConfirmed},
		OldestFirst: true,
	}, "next upcoming")
	if err != nil {
		return nil, err
	}
	resp.NextUpcoming = models.FromDomainBooking(nextUpcoming)

	s.logger.Info("Stats: pending=%d, today=%d, upcoming=%d, total=%d",
		pendingCount, todayCount, upcomingCount, totalCount)

	return resp, nil
}

// Вспомогательные методы

func (s *Service) getByID(ctx context.Context, id int64, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

func (s *Service) getByToken(ctx context.Context, token string, method string) (*domain.Booking, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking not found by token", method)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// checkSlotFree проверяет, что новый слот существует в сетке дня и свободен
// от других блокирующих бронирований
func (s *Service) checkSlotFree(ctx context.Context, booking *domain.Booking, date types.DateString, startTime types.TimeString) error {
	recurring, err := s.scheduleRepo.ListRecurringRules(ctx)
	if err != nil {
		s.logger.Error("Reschedule: failed to list recurring rules: %v", err)
		return fmt.Errorf("%w: Reschedule - failed to list recurring rules: %v", ErrInternal, err)
	}

	overrides, err := s.scheduleRepo.ListOverrides(ctx, date, date)
	if err != nil {
		s.logger.Error("Reschedule: failed to list overrides: %v", err)
		return fmt.Errorf("%w: Reschedule - failed to list overrides: %v", ErrInternal, err)
	}

	day := scheduleCore.ResolveDay(date, recurring, overrides)
	if !day.IsOpen {
		s.logger.Warn("Reschedule: salon closed on %s", date)
		return ErrSalonClosed
	}

	candidates := scheduleCore.GenerateSlots(day.Windows, booking.DurationMinutes)
	found := false
	for _, c := range candidates {
		if c == startTime {
			found = true
			break
		}
	}
	if !found {
		s.logger.Warn("Reschedule: %s is not a valid slot start on %s", startTime, date)
		return ErrSlotNotBookable
	}

	existing, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(date),
		EndDate:   ptr.Ptr(date),
		Statuses:  domain.BlockingStatuses,
	})
	if err != nil {
		s.logger.Error("Reschedule: failed to list bookings: %v", err)
		return fmt.Errorf("%w: Reschedule - failed to list bookings: %v", ErrInternal, err)
	}

	others := make([]*domain.Booking, 0, len(existing))
	for _, b := range existing {
		if b.ID != booking.ID {
			others = append(others, b)
		}
	}

	for _, slot := range scheduleCore.MarkAvailability(candidates, others, booking.DurationMinutes) {
		if slot.Time == startTime && !slot.Available {
			s.logger.Warn("Reschedule: slot %s %s already booked", date, startTime)
			return ErrSlotTaken
		}
	}

	return nil
}

func (s *Service) count(ctx context.Context, filter domain.BookingsFilter, name string) (int, error) {
	n, err := s.bookingRepo.CountWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: failed to count %s bookings: %v", name, err)
		return 0, fmt.Errorf("%w: Stats - failed to count %s bookings: %v", ErrInternal, name, err)
	}
	return n, nil
}

func (s *Service) first(ctx context.Context, filter domain.BookingsFilter, name string) (*domain.Booking, error) {
	found, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: failed to fetch %s booking: %v", name, err)
		return nil, fmt.Errorf("%w: Stats - failed to fetch %s booking: %v", ErrInternal, name, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// checkTransition проверяет допустимость перехода статуса через предикаты модели
func checkTransition(booking *domain.Booking, newStatus domain.BookingStatus) error {
	switch newStatus {
	case domain.StatusConfirmed:
		if !booking.CanBeConfirmed() {
			return ErrInvalidTransition
		}
	case domain.StatusCancelled:
		if !booking.CanBeCancelled() {
			return ErrInvalidTransition
		}
	case domain.StatusCompleted:
		if !booking.CanBeCompleted() {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}
	return nil
}
