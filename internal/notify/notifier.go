package notify

import "github.com/mlevasseur/salon-booking-service/internal/domain"

// Notifier порт уведомлений о жизненном цикле бронирования.
// Доставка (email) - внешний коллаборатор; сервис зависит только от порта.
type Notifier interface {
	BookingRequested(booking *domain.Booking)
	BookingConfirmed(booking *domain.Booking)
	BookingCancelled(booking *domain.Booking)
	BookingRescheduled(booking *domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// LogNotifier реализация Notifier, пишущая события в лог.
// Используется, пока не подключен почтовый шлюз.
type LogNotifier struct {
	logger Logger
}

// NewLogNotifier создает лог-реализацию уведомлений
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// BookingRequested уведомляет о новой заявке на бронирование
func (n *LogNotifier) BookingRequested(booking *domain.Booking) {
	n.logger.Info("notify: booking requested id=%d service=%q date=%s time=%s customer=%s",
		booking.ID, booking.ServiceName, booking.Date, booking.StartTime, booking.CustomerEmail)
}

// BookingConfirmed уведомляет клиента о подтверждении записи
func (n *LogNotifier) BookingConfirmed(booking *domain.Booking) {
	n.logger.Info("notify: booking confirmed id=%d date=%s time=%s customer=%s",
		booking.ID, booking.Date, booking.StartTime, booking.CustomerEmail)
}

// BookingCancelled уведомляет клиента об отмене записи
func (n *LogNotifier) BookingCancelled(booking *domain.Booking) {
	n.logger.Info("notify: booking cancelled id=%d date=%s time=%s customer=%s",
		booking.ID, booking.Date, booking.StartTime, booking.CustomerEmail)
}

// BookingRescheduled уведомляет клиента о переносе записи
func (n *LogNotifier) BookingRescheduled(booking *domain.Booking) {
	n.logger.Info("notify: booking rescheduled id=%d date=%s time=%s customer=%s",
		booking.ID, booking.Date, booking.StartTime, booking.CustomerEmail)
}
