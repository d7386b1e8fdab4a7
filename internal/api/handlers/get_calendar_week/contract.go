package get_calendar_week

import (
	"context"

	getCalendarWeek "github.com/mlevasseur/salon-booking-service/internal/usecase/get_calendar_week"
)

type GetCalendarWeekUseCase interface {
	Execute(ctx context.Context, req *getCalendarWeek.Request) (*getCalendarWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
