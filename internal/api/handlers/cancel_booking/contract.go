package cancel_booking

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	CancelByToken(ctx context.Context, token string, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
