package save_override

import (
	"errors"
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
	"github.com/mlevasseur/salon-booking-service/internal/service/schedule"
	"github.com/mlevasseur/salon-booking-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoWindows          = "открытое переопределение требует хотя бы одно рабочее окно"
	msgInvalidTimeRange   = "начало окна должно быть раньше конца"
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

// Handle POST /api/v1/admin/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveOverride(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNoWindows):
			h.logger.Warn("POST /admin/overrides - No windows: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNoWindows)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/overrides - Invalid time range: date=%s, %v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/overrides - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/overrides - Failed to save override: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/overrides - Override saved successfully: date=%s, rows=%d",
		req.Date, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
