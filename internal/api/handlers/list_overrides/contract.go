package list_overrides

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOverrides(ctx context.Context, from, to string) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
