package get_open_dates

import (
	"fmt"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные и возвращает глубину сканирования
func validateRequest(req *Request) (int, error) {
	if req.ServiceID <= 0 {
		return 0, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Days < 0 {
		return 0, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultOpenDatesWindowDays
	}
	if days > domain.MaxOpenDatesWindowDays {
		days = domain.MaxOpenDatesWindowDays
	}

	return days, nil
}
