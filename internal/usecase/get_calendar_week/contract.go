package get_calendar_week

import (
	"context"

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

// BookingRepository интерфейс для чтения бронирований
type BookingRepository interface {
	// ListWithFilter возвращает бронирования по фильтру
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
