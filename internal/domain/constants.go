package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot step granularity: candidate start times are generated every 30 minutes
// regardless of service duration
const SlotStepMinutes = 30

// Open-dates scan limits
const (
	DefaultOpenDatesWindowDays = 30
	MaxOpenDatesWindowDays     = 90
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
)

// BlockingStatuses список статусов, занимающих слот.
// Используется при вычислении доступности.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// CalendarStatuses список статусов, отображаемых в календаре администратора.
// Завершенные бронирования показываются, но слот не занимают.
var CalendarStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
