package get_calendar_week

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// Request модель запроса календаря администратора на одну неделю
type Request struct {
	StartDate string // Первая дата недели в формате YYYY-MM-DD
}

// CalendarDay один день календаря: эффективное расписание плюс бронирования.
// В календаре показываются pending, confirmed и completed; отмененные
// бронирования не отображаются.
type CalendarDay struct {
	Date      types.DateString
	DayOfWeek int
	IsOpen    bool
	Windows   []domain.Window
	Source    domain.ScheduleSource
	Reason    *string
	Bookings  []*domain.Booking
}

// Response модель ответа: ровно 7 дней начиная со StartDate
type Response struct {
	StartDate types.DateString
	Days      []CalendarDay
}
