package list_overrides

import (
	"errors"
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
	"github.com/mlevasseur/salon-booking-service/internal/service/schedule"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidRange = "некорректный период, ожидается YYYY-MM-DD и from <= to"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/overrides
// Query params: from (required), to (required), оба YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		h.logger.Warn("GET /admin/overrides - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	result, err := h.service.ListOverrides(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/overrides - Invalid range: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/overrides - Failed to list overrides: from=%s, to=%s, error=%v", from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/overrides - Overrides retrieved successfully: from=%s, to=%s, count=%d",
		from, to, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
