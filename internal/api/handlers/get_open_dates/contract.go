package get_open_dates

import (
	"context"

	getOpenDates "github.com/mlevasseur/salon-booking-service/internal/usecase/get_open_dates"
)

type GetOpenDatesUseCase interface {
	Execute(ctx context.Context, req *getOpenDates.Request) (*getOpenDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
