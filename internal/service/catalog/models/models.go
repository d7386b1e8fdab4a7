package models

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
)

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Name            string  `json:"name"`                  // Название услуги
	Description     *string `json:"description,omitempty"` // Описание (опционально)
	DurationMinutes int     `json:"durationMinutes"`       // Длительность в минутах; 0 для дополнений
	PriceCents      int     `json:"priceCents"`            // Цена в центах
	IsAddon         bool    `json:"isAddon"`               // true = дополнение к основной услуге
}

// UpdateServiceRequest частичное обновление услуги: nil поля не меняются.
// Категория (isAddon) после создания не меняется.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	PriceCents      *int    `json:"priceCents,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceCents      int     `json:"priceCents"`
	IsAddon         bool    `json:"isAddon"`
	IsActive        bool    `json:"isActive"`
}

// DeleteServiceResponse результат удаления услуги
type DeleteServiceResponse struct {
	Success bool `json:"success"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		IsAddon:         s.IsAddon,
		IsActive:        s.IsActive,
	}
}
