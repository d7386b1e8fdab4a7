package schedule

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListRecurringRules(ctx context.Context) ([]*domain.RecurringRule, error)
	ReplaceRecurringRules(ctx context.Context, rules []*domain.RecurringRule) error
	ListOverrides(ctx context.Context, from, to types.DateString) ([]*domain.ScheduleOverride, error)
	ReplaceOverridesForDate(ctx context.Context, date types.DateString, overrides []*domain.ScheduleOverride) error
	DeleteOverridesInRange(ctx context.Context, from, to types.DateString) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
