package list_services

import (
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
)

type Handler struct {
	serviceRepo ServiceRepository
	logger      Logger
}

func NewHandler(serviceRepo ServiceRepository, logger Logger) *Handler {
	return &Handler{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Handle GET /api/v1/services
// Публичный каталог отдает только активные услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceRepo.List(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
