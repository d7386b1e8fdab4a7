package create_booking

import (
	bookingModels "github.com/mlevasseur/salon-booking-service/internal/service/bookings/models"
	createBooking "github.com/mlevasseur/salon-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64   `json:"serviceId"`
	Date          string  `json:"date"`      // YYYY-MM-DD
	StartTime     string  `json:"startTime"` // HH:MM
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// CreateBookingResponse HTTP response model.
// Токен возвращается один раз при создании - по нему клиент управляет записью.
type CreateBookingResponse struct {
	Booking *bookingModels.BookingResponse `json:"booking"`
	Token   string                         `json:"token"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
		Token:   resp.Booking.Token,
	}
}
