package list_services

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
