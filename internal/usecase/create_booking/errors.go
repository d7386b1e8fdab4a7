package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotBookable возвращается для неактивных услуг и дополнений,
	// которые нельзя бронировать как основную услугу
	ErrServiceNotBookable = errors.New("service cannot be booked directly")

	// ErrSalonClosed возвращается, когда салон закрыт в запрошенную дату
	ErrSalonClosed = errors.New("salon is closed on this date")

	// ErrSlotNotBookable возвращается, когда запрошенное время не является
	// допустимым началом слота для этой даты и услуги
	ErrSlotNotBookable = errors.New("requested time is not a bookable slot")

	// ErrSlotTaken возвращается, когда запрошенный слот уже занят
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrDateInPast возвращается для дат раньше сегодняшней
	ErrDateInPast = errors.New("date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
