package models

import (
	"errors"
	"time"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос администратора на список бронирований
type ListBookingsRequest struct {
	StartDate *string `json:"startDate,omitempty"` // Начало периода YYYY-MM-DD (опционально)
	EndDate   *string `json:"endDate,omitempty"`   // Конец периода YYYY-MM-DD (опционально)
	Status    *string `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	ServiceID *int64  `json:"serviceId,omitempty"` // Фильтр по услуге (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ServiceID: r.ServiceID,
	}

	if r.StartDate != nil {
		date, err := types.NewDateString(*r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &date
	}

	if r.EndDate != nil {
		date, err := types.NewDateString(*r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на изменение статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RescheduleRequest запрос на перенос бронирования
type RescheduleRequest struct {
	Date      string `json:"date"`      // Новая дата YYYY-MM-DD
	StartTime string `json:"startTime"` // Новое время начала HH:MM
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	ServiceID       int64  `json:"serviceId"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные услуги
	ServiceName string `json:"serviceName"`
	PriceCents  int    `json:"priceCents"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse сводка для панели администратора
type StatsResponse struct {
	PendingCount  int `json:"pendingCount"`  // Заявки, ожидающие решения
	TodayCount    int `json:"todayCount"`    // Активные бронирования на сегодня
	UpcomingCount int `json:"upcomingCount"` // Активные бронирования начиная с завтра
	TotalCount    int `json:"totalCount"`    // Все бронирования за всю историю

	NextPending  *BookingResponse `json:"nextPending,omitempty"`  // Ближайшая необработанная заявка
	NextUpcoming *BookingResponse `json:"nextUpcoming,omitempty"` // Ближайшее подтвержденное бронирование
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ServiceID:          b.ServiceID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		Date:               b.Date.String(),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		ServiceName:        b.ServiceName,
		PriceCents:         b.PriceCents,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
