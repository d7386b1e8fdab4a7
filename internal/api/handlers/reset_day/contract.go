package reset_day

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ResetDay(ctx context.Context, date string) (*models.ResetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
