package create_booking

import (
	"context"
	"time"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// ScheduleRepository интерфейс для работы с расписанием салона
type ScheduleRepository interface {
	// ListRecurringRules возвращает все строки недельного расписания
	ListRecurringRules(ctx context.Context) ([]*domain.RecurringRule, error)

	// ListOverrides возвращает переопределения дат в диапазоне [from, to]
	ListOverrides(ctx context.Context, from, to types.DateString) ([]*domain.ScheduleOverride, error)
}

// BookingRepository интерфейс для работы с бронированиями
type BookingRepository interface {
	// Create создает бронирование и возвращает его с заполненным ID
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// ListWithFilter возвращает бронирования по фильтру.
	// Внутри транзакции выборка на одну дату блокирует строки (FOR UPDATE).
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс для чтения услуг
type ServiceRepository interface {
	// GetByID возвращает услугу по идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// DoSerializable выполняет fn в транзакции SERIALIZABLE
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier порт уведомлений о жизненном цикле бронирования
type Notifier interface {
	BookingRequested(booking *domain.Booking)
}

// TimeProvider источник текущего времени для проверки "дата не в прошлом"
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
