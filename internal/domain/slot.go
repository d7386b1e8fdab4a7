package domain

import "github.com/mlevasseur/salon-booking-service/pkg/types"

// Slot is a candidate appointment start time annotated with availability.
// Ephemeral, response-only.
type Slot struct {
	Time      types.TimeString
	Available bool
}
