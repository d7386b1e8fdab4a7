package get_schedule

import (
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/admin/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GetWeeklySchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/schedule - Failed to get schedule: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule - Schedule retrieved successfully: rules_count=%d", len(schedule.Rules))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
