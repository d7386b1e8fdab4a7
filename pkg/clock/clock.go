package clock

import "time"

// System источник текущего времени для продакшена.
// В тестах подменяется фиксированными часами.
type System struct{}

// Now возвращает текущее время
func (System) Now() time.Time {
	return time.Now()
}
