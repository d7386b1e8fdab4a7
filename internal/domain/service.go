package domain

import "time"

// Service represents a salon service offered for booking
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	PriceCents      int
	IsAddon         bool // true = supplement booked on top of a main service
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanBeBookedDirectly returns true if the service can be the main service of a booking
func (s *Service) CanBeBookedDirectly() bool {
	return s.IsActive && !s.IsAddon
}
