package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// validateRequest валидирует входные данные и возвращает разобранную дату
func validateRequest(req *Request) (types.DateString, error) {
	if req.ServiceID <= 0 {
		return "", fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	date, err := types.NewDateString(req.Date)
	if err != nil {
		if errors.Is(err, types.ErrInvalidDateFormat) {
			return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}
