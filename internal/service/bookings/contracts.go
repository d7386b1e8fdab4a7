package bookings

import (
	"context"
	"time"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CountWithFilter(ctx context.Context, filter domain.BookingsFilter) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
	Reschedule(ctx context.Context, id int64, date types.DateString, startTime types.TimeString) error
}

// ScheduleRepository интерфейс для чтения расписания (проверка конфликтов при переносе)
type ScheduleRepository interface {
	ListRecurringRules(ctx context.Context) ([]*domain.RecurringRule, error)
	ListOverrides(ctx context.Context, from, to types.DateString) ([]*domain.ScheduleOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier порт уведомлений клиента об изменениях бронирования
type Notifier interface {
	BookingConfirmed(booking *domain.Booking)
	BookingCancelled(booking *domain.Booking)
	BookingRescheduled(booking *domain.Booking)
}

// TimeProvider источник текущего времени для статистики
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
