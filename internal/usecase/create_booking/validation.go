package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// validateRequest валидирует входные данные и возвращает разобранные дату и время
func validateRequest(req *Request) (types.DateString, types.TimeString, error) {
	if req.ServiceID <= 0 {
		return "", "", fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	date, err := types.NewDateString(req.Date)
	if err != nil {
		return "", "", fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return "", "", fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return "", "", fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return "", "", fmt.Errorf("%w: customerEmail is not a valid address", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", "", fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return date, startTime, nil
}
