package schedule

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// GenerateSlots генерирует кандидатов времени начала записи для рабочих окон дня.
//
// Каждое окно обходится независимо от его начала с фиксированным шагом
// domain.SlotStepMinutes; кандидат добавляется, пока запись длительностью
// durationMinutes помещается в окно (cursor + duration <= end). Кандидаты
// разных окон конкатенируются в порядке окон.
//
// Некорректное окно (start >= end) пропускается целиком - одна битая строка
// расписания не должна закрывать весь день. Окно короче длительности услуги
// дает ноль кандидатов, это не ошибка.
func GenerateSlots(windows []domain.Window, durationMinutes int) []types.TimeString {
	candidates := make([]types.TimeString, 0)

	for _, w := range windows {
		if !w.IsConsistent() {
			continue
		}

		end := w.EndTime.Minutes()
		for cursor := w.StartTime.Minutes(); cursor+durationMinutes <= end; cursor += domain.SlotStepMinutes {
			slot, err := types.TimeStringFromMinutes(cursor)
			if err != nil {
				break
			}
			candidates = append(candidates, slot)
		}
	}

	return candidates
}

// MarkAvailability помечает каждого кандидата доступностью, проверяя пересечение
// интервала [c, c+serviceDuration) с интервалами существующих бронирований
// [b, b+durationMinutes бронирования).
//
// Интервалы полуоткрытые: касание границ пересечением не считается
// (запись 09:00-09:30 не конфликтует с кандидатом 09:30). Слот занимают
// только бронирования в блокирующих статусах (pending, confirmed).
func MarkAvailability(candidates []types.TimeString, bookings []*domain.Booking, serviceDuration int) []domain.Slot {
	slots := make([]domain.Slot, 0, len(candidates))

	for _, c := range candidates {
		start := c.Minutes()
		slots = append(slots, domain.Slot{
			Time:      c,
			Available: !isBooked(start, start+serviceDuration, bookings),
		})
	}

	return slots
}

// HasOpenSlot проверяет, существует ли хотя бы один свободный слот в окнах дня.
// Останавливается на первом свободном кандидате - это проверка существования,
// а не полный перебор, поэтому дешевле MarkAvailability на длинных диапазонах.
func HasOpenSlot(windows []domain.Window, bookings []*domain.Booking, serviceDuration int) bool {
	for _, w := range windows {
		if !w.IsConsistent() {
			continue
		}

		end := w.EndTime.Minutes()
		for cursor := w.StartTime.Minutes(); cursor+serviceDuration <= end; cursor += domain.SlotStepMinutes {
			if !isBooked(cursor, cursor+serviceDuration, bookings) {
				return true
			}
		}
	}

	return false
}

// isBooked проверяет пересечение кандидата [start, end) хотя бы с одним
// блокирующим бронированием.
//
// Каноничный тест пересечения полуоткрытых интервалов: интервалы
// пересекаются тогда и только тогда, когда начало одного СТРОГО раньше
// конца другого в обе стороны.
func isBooked(start, end int, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.BlocksSlot() {
			continue
		}

		bStart := b.StartTime.Minutes()
		bEnd := bStart + b.DurationMinutes

		if bStart < end && bEnd > start {
			return true
		}
	}
	return false
}
