package get_calendar_week

import (
	bookingModels "github.com/mlevasseur/salon-booking-service/internal/service/bookings/models"
	getCalendarWeek "github.com/mlevasseur/salon-booking-service/internal/usecase/get_calendar_week"
)

// CalendarWeekResponse HTTP response model
type CalendarWeekResponse struct {
	StartDate string        `json:"startDate"`
	Days      []CalendarDay `json:"days"`
}

// CalendarDay один день календаря
type CalendarDay struct {
	Date      string                          `json:"date"`
	DayOfWeek int                             `json:"dayOfWeek"`
	IsOpen    bool                            `json:"isOpen"`
	Windows   []CalendarWindow                `json:"windows"`
	Source    string                          `json:"source"`
	Reason    *string                         `json:"reason,omitempty"`
	Bookings  []bookingModels.BookingResponse `json:"bookings"`
}

// CalendarWindow рабочее окно дня
type CalendarWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarWeek.Response) *CalendarWeekResponse {
	days := make([]CalendarDay, 0, len(resp.Days))
	for _, d := range resp.Days {
		windows := make([]CalendarWindow, 0, len(d.Windows))
		for _, w := range d.Windows {
			windows = append(windows, CalendarWindow{
				StartTime: w.StartTime.String(),
				EndTime:   w.EndTime.String(),
			})
		}

		bookings := make([]bookingModels.BookingResponse, 0, len(d.Bookings))
		for _, b := range d.Bookings {
			if dto := bookingModels.FromDomainBooking(b); dto != nil {
				bookings = append(bookings, *dto)
			}
		}

		days = append(days, CalendarDay{
			Date:      d.Date.String(),
			DayOfWeek: d.DayOfWeek,
			IsOpen:    d.IsOpen,
			Windows:   windows,
			Source:    string(d.Source),
			Reason:    d.Reason,
			Bookings:  bookings,
		})
	}

	return &CalendarWeekResponse{
		StartDate: resp.StartDate.String(),
		Days:      days,
	}
}
