package schedule

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// ResolveDay вычисляет эффективное расписание салона на конкретную дату.
//
// Приоритет источников строгий и полный:
//  1. Если на дату есть хотя бы один override с isClosed - день закрыт
//     (reason берется из первого закрывающего override).
//  2. Если есть overrides без isClosed - рабочие окна берутся из ВСЕХ
//     строк override (у даты может быть несколько отдельных окон).
//     Недельное расписание при этом полностью игнорируется - частичное
//     слияние override и недельных окон не выполняется никогда.
//  3. Иначе - окна из недельного расписания для этого дня недели
//     (только строки с isAvailable).
func ResolveDay(date types.DateString, recurring []*domain.RecurringRule, overrides []*domain.ScheduleOverride) domain.EffectiveDay {
	day := domain.EffectiveDay{
		Date:      date,
		DayOfWeek: date.DayOfWeek(),
		Windows:   []domain.Window{},
		Source:    domain.SourceDefault,
	}

	dayOverrides := make([]*domain.ScheduleOverride, 0)
	for _, o := range overrides {
		if o.Date == date {
			dayOverrides = append(dayOverrides, o)
		}
	}

	if len(dayOverrides) > 0 {
		day.Source = domain.SourceOverride

		// Любая закрывающая строка закрывает весь день
		for _, o := range dayOverrides {
			if o.IsClosed {
				day.Reason = o.Reason
				return day
			}
		}

		day.Reason = dayOverrides[0].Reason
		for _, o := range dayOverrides {
			if o.StartTime != nil && o.EndTime != nil {
				day.Windows = append(day.Windows, domain.Window{
					StartTime: *o.StartTime,
					EndTime:   *o.EndTime,
				})
			}
		}
		day.IsOpen = len(day.Windows) > 0
		return day
	}

	for _, r := range recurring {
		if r.DayOfWeek == day.DayOfWeek && r.IsAvailable {
			day.Windows = append(day.Windows, domain.Window{
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
			})
		}
	}
	day.IsOpen = len(day.Windows) > 0

	return day
}

// ResolveRange вычисляет эффективное расписание для days последовательных дат
// начиная со start. Правила и overrides передаются одним снимком на весь
// диапазон - по одному обращению к хранилищу, а не по одному на дату.
func ResolveRange(start types.DateString, days int, recurring []*domain.RecurringRule, overrides []*domain.ScheduleOverride) []domain.EffectiveDay {
	resolved := make([]domain.EffectiveDay, 0, days)
	for _, date := range types.DateRange(start, days) {
		resolved = append(resolved, ResolveDay(date, recurring, overrides))
	}
	return resolved
}
