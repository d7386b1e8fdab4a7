package save_override

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	SaveOverride(ctx context.Context, req *models.SaveOverrideRequest) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
