package models

import (
	"time"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
)

// Request модели

// WeeklyRuleInput одна строка недельного расписания
type WeeklyRuleInput struct {
	DayOfWeek   int    `json:"dayOfWeek"`   // 0 = воскресенье .. 6 = суббота
	StartTime   string `json:"startTime"`   // HH:MM
	EndTime     string `json:"endTime"`     // HH:MM
	IsAvailable bool   `json:"isAvailable"` // false - день помечен закрытым
}

// ReplaceWeeklyScheduleRequest запрос на полную замену недельного расписания
type ReplaceWeeklyScheduleRequest struct {
	Rules []WeeklyRuleInput `json:"rules"`
}

// OverrideWindowInput одно рабочее окно переопределения даты
type OverrideWindowInput struct {
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// SaveOverrideRequest запрос на сохранение переопределения даты.
// Либо день закрыт целиком, либо задается 1..n рабочих окон.
type SaveOverrideRequest struct {
	Date     string                `json:"date"` // YYYY-MM-DD
	IsClosed bool                  `json:"isClosed"`
	Windows  []OverrideWindowInput `json:"windows,omitempty"`
	Reason   *string               `json:"reason,omitempty"`
}

// Response модели

// WeeklyRuleResponse одна строка недельного расписания
type WeeklyRuleResponse struct {
	ID          int64  `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// WeeklyScheduleResponse недельное расписание целиком
type WeeklyScheduleResponse struct {
	Rules []WeeklyRuleResponse `json:"rules"`
}

// OverrideResponse одно переопределение даты
type OverrideResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	IsClosed  bool      `json:"isClosed"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OverrideListResponse список переопределений за период
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// ResetResponse результат сброса переопределений
type ResetResponse struct {
	Deleted int64 `json:"deleted"` // Число удаленных строк
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.RecurringRule) WeeklyRuleResponse {
	return WeeklyRuleResponse{
		ID:          r.ID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		IsAvailable: r.IsAvailable,
	}
}

// FromDomainRules конвертирует список правил в DTO
func FromDomainRules(rules []*domain.RecurringRule) *WeeklyScheduleResponse {
	resp := &WeeklyScheduleResponse{Rules: make([]WeeklyRuleResponse, 0, len(rules))}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, FromDomainRule(r))
	}
	return resp
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.ScheduleOverride) OverrideResponse {
	resp := OverrideResponse{
		ID:        o.ID,
		Date:      o.Date.String(),
		IsClosed:  o.IsClosed,
		Reason:    o.Reason,
		CreatedAt: o.CreatedAt,
	}
	if o.StartTime != nil {
		s := o.StartTime.String()
		resp.StartTime = &s
	}
	if o.EndTime != nil {
		e := o.EndTime.String()
		resp.EndTime = &e
	}
	return resp
}

// FromDomainOverrides конвертирует список переопределений в DTO
func FromDomainOverrides(overrides []*domain.ScheduleOverride) *OverrideListResponse {
	resp := &OverrideListResponse{Overrides: make([]OverrideResponse, 0, len(overrides))}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, FromDomainOverride(o))
	}
	return resp
}
