package get_service

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
)

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceCents      int     `json:"priceCents"`
	IsAddon         bool    `json:"isAddon"`
	IsActive        bool    `json:"isActive"`
}

// FromDomainService конвертирует domain модель в HTTP response
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
