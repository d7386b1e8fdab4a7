package get_open_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
	getOpenDates "github.com/mlevasseur/salon-booking-service/internal/usecase/get_open_dates"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDays      = "некорректное число дней"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetOpenDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetOpenDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/open-dates
// Query params: serviceId (required), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /availability/open-dates - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/open-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// days опционален - по умолчанию use case сканирует стандартный диапазон
	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /availability/open-dates - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getOpenDates.Request{
		ServiceID: serviceID,
		Days:      days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getOpenDates.ErrServiceNotFound):
			h.logger.Warn("GET /availability/open-dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getOpenDates.ErrInvalidInput),
			errors.Is(err, getOpenDates.ErrInvalidDuration):
			h.logger.Warn("GET /availability/open-dates - Invalid input: service_id=%d, days=%d", serviceID, days)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /availability/open-dates - Failed to get open dates: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/open-dates - Open dates retrieved: service_id=%d, dates_count=%d",
		serviceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
