package get_calendar_week

import (
	"errors"
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
	getCalendarWeek "github.com/mlevasseur/salon-booking-service/internal/usecase/get_calendar_week"
)

const (
	msgMissingStart = "начальная дата обязательна"
	msgInvalidStart = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarWeekUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar-week
// Query params: start (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	if start == "" {
		h.logger.Warn("GET /admin/calendar-week - Missing start date")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendarWeek.Request{StartDate: start})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarWeek.ErrInvalidDate):
			h.logger.Warn("GET /admin/calendar-week - Invalid start date: start=%s", start)
			handlers.RespondBadRequest(w, msgInvalidStart)

		default:
			h.logger.Error("GET /admin/calendar-week - Failed to build calendar: start=%s, error=%v", start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/calendar-week - Calendar retrieved successfully: start=%s", start)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
