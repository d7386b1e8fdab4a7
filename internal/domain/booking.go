package domain

import (
	"time"

	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer appointment request in the system
type Booking struct {
	ID              int64
	ServiceID       int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	Date            types.DateString
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized service data for history
	ServiceName string
	PriceCents  int

	// Token grants the customer access to their booking without an account
	Token string

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot returns true if the booking occupies its time slot.
// A pending request holds its slot until it is explicitly rejected,
// so two customers cannot be accepted for the same time.
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsFinal returns true if the booking reached a terminal state
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate *types.DateString // Начало периода (опционально)
	EndDate   *types.DateString // Конец периода (опционально)
	Statuses  []BookingStatus   // Допустимые статусы (пусто - без фильтра)
	ServiceID *int64            // Фильтр по услуге (опционально)

	// OldestFirst сортирует период по возрастанию даты (для "ближайших" выборок).
	// Выборка на одну дату всегда сортируется по времени начала.
	OldestFirst bool
}
