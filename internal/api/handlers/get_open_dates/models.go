package get_open_dates

import (
	getOpenDates "github.com/mlevasseur/salon-booking-service/internal/usecase/get_open_dates"
)

// OpenDateItem HTTP модель одной открытой даты
type OpenDateItem struct {
	Date              string `json:"date"`
	IsOpen            bool   `json:"isOpen"`
	HasAvailableSlots bool   `json:"hasAvailableSlots"`
}

// OpenDatesResponse HTTP response model
type OpenDatesResponse struct {
	ServiceID int64          `json:"serviceId"`
	StartDate string         `json:"startDate"`
	Days      int            `json:"days"`
	Dates     []OpenDateItem `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOpenDates.Response) *OpenDatesResponse {
	dates := make([]OpenDateItem, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = OpenDateItem{
			Date:              d.Date.String(),
			IsOpen:            d.IsOpen,
			HasAvailableSlots: d.HasAvailableSlots,
		}
	}

	return &OpenDatesResponse{
		ServiceID: resp.ServiceID,
		StartDate: resp.StartDate.String(),
		Days:      resp.Days,
		Dates:     dates,
	}
}
