package delete_service

import (
	"context"

	"github.com/mlevasseur/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
