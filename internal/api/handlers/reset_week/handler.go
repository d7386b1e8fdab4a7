package reset_week

import (
	"errors"
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
	"github.com/mlevasseur/salon-booking-service/internal/service/schedule"
)

const (
	msgMissingStart = "начальная дата обязательна"
	msgInvalidStart = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle DELETE /api/v1/admin/overrides
// Query params: start (required, YYYY-MM-DD) - удаляются переопределения
// семи дат start..start+6
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	if start == "" {
		h.logger.Warn("DELETE /admin/overrides - Missing start date")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	result, err := h.service.ResetWeek(r.Context(), start)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/overrides - Invalid start date: start=%s", start)
			handlers.RespondBadRequest(w, msgInvalidStart)

		default:
			h.logger.Error("DELETE /admin/overrides - Failed to reset week: start=%s, error=%v", start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/overrides - Week reset successfully: start=%s, deleted=%d",
		start, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
