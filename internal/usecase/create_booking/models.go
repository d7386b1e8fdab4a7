package create_booking

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     int64
	Date          string // Дата в формате YYYY-MM-DD
	StartTime     string // Время начала в формате HH:MM
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string
}

// Response модель ответа: созданное бронирование в статусе pending.
// Token дает клиенту доступ к бронированию без аккаунта.
type Response struct {
	Booking *domain.Booking
}
