package schedule

import "errors"

var (
	// ErrInvalidDayOfWeek возвращается для дня недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrNoWindows возвращается для открытого переопределения без окон
	ErrNoWindows = errors.New("an open override requires at least one window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
