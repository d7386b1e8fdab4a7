package schedule

import (
	"context"
	"fmt"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/internal/service/schedule/models"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

const weekDays = 7

// Service сервис администрирования расписания салона
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeeklySchedule возвращает все строки недельного расписания
func (s *Service) GetWeeklySchedule(ctx context.Context) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching weekly schedule")

	rules, err := s.scheduleRepo.ListRecurringRules(ctx)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRules(rules), nil
}

// ReplaceWeeklySchedule атомарно заменяет недельное расписание целиком.
// Старые строки удаляются и вставляются новые в одной транзакции - частично
// примененное расписание невозможно.
func (s *Service) ReplaceWeeklySchedule(ctx context.Context, req *models.ReplaceWeeklyScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("ReplaceWeeklySchedule: replacing weekly schedule with %d rules", len(req.Rules))

	rules, err := s.validateRules(req.Rules)
	if err != nil {
		s.logger.Warn("ReplaceWeeklySchedule: validation failed: %v", err)
		return nil, err
	}

	var saved []*domain.RecurringRule
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.ReplaceRecurringRules(txCtx, rules); err != nil {
			s.logger.Error("ReplaceWeeklySchedule: repository error: %v", err)
			return fmt.Errorf("%w: ReplaceWeeklySchedule - repository error: %v", ErrInternal, err)
		}

		saved, err = s.scheduleRepo.ListRecurringRules(txCtx)
		if err != nil {
			s.logger.Error("ReplaceWeeklySchedule: failed to reload rules: %v", err)
			return fmt.Errorf("%w: ReplaceWeeklySchedule - failed to reload rules: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.Info("ReplaceWeeklySchedule: successfully saved %d rules", len(saved))
	return models.FromDomainRules(saved), nil
}

// ListOverrides возвращает переопределения дат за период
func (s *Service) ListOverrides(ctx context.Context, from, to string) (*models.OverrideListResponse, error) {
	s.logger.Info("ListOverrides: fetching overrides from %s to %s", from, to)

	fromDate, err := types.NewDateString(from)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}
	toDate, err := types.NewDateString(to)
	if err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	overrides, err := s.scheduleRepo.ListOverrides(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrides(overrides), nil
}

// SaveOverride сохраняет переопределение даты: либо день закрыт целиком,
// либо дата получает собственный набор рабочих окон. Прежние строки даты
// удаляются и заменяются новыми атомарно.
func (s *Service) SaveOverride(ctx context.Context, req *models.SaveOverrideRequest) (*models.OverrideListResponse, error) {
	s.logger.Info("SaveOverride: saving override for %s, closed=%v, windows=%d", req.Date, req.IsClosed, len(req.Windows))

	date, err := types.NewDateString(req.Date)
	if err != nil {
		s.logger.Warn("SaveOverride: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	overrides, err := s.buildOverrides(date, req)
	if err != nil {
		s.logger.Warn("SaveOverride: validation failed: %v", err)
		return nil, err
	}

	var saved []*domain.ScheduleOverride
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.ReplaceOverridesForDate(txCtx, date, overrides); err != nil {
			s.logger.Error("SaveOverride: repository error for date=%s: %v", date, err)
			return fmt.Errorf("%w: SaveOverride - repository error: %v", ErrInternal, err)
		}

		saved, err = s.scheduleRepo.ListOverrides(txCtx, date, date)
		if err != nil {
			s.logger.Error("SaveOverride: failed to reload overrides for date=%s: %v", date, err)
			return fmt.Errorf("%w: SaveOverride - failed to reload overrides: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.Info("SaveOverride: successfully saved %d rows for date=%s", len(saved), date)
	return models.FromDomainOverrides(saved), nil
}

// ResetDay удаляет все переопределения даты, возвращая ее к недельному расписанию
func (s *Service) ResetDay(ctx context.Context, dateStr string) (*models.ResetResponse, error) {
	s.logger.Info("ResetDay: resetting overrides for %s", dateStr)

	date, err := types.NewDateString(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	deleted, err := s.scheduleRepo.DeleteOverridesInRange(ctx, date, date)
	if err != nil {
		s.logger.Error("ResetDay: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ResetDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetDay: deleted %d overrides for date=%s", deleted, date)
	return &models.ResetResponse{Deleted: deleted}, nil
}

// ResetWeek удаляет переопределения семи дат начиная с startDate
func (s *Service) ResetWeek(ctx context.Context, startDateStr string) (*models.ResetResponse, error) {
	s.logger.Info("ResetWeek: resetting overrides for week starting %s", startDateStr)

	start, err := types.NewDateString(startDateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate: %v", ErrInvalidInput, err)
	}
	end := start.AddDays(weekDays - 1)

	deleted, err := s.scheduleRepo.DeleteOverridesInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("ResetWeek: repository error for week=%s: %v", start, err)
		return nil, fmt.Errorf("%w: ResetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetWeek: deleted %d overrides for week starting %s", deleted, start)
	return &models.ResetResponse{Deleted: deleted}, nil
}

// Вспомогательные методы

// validateRules проверяет строки недельного расписания и конвертирует их
// в domain модели
func (s *Service) validateRules(inputs []models.WeeklyRuleInput) ([]*domain.RecurringRule, error) {
	rules := make([]*domain.RecurringRule, 0, len(inputs))

	for i, in := range inputs {
		if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: rule %d has day %d", ErrInvalidDayOfWeek, i, in.DayOfWeek)
		}

		start, err := types.NewTimeStringFromString(in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d startTime: %v", ErrInvalidInput, i, err)
		}
		end, err := types.NewTimeStringFromString(in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d endTime: %v", ErrInvalidInput, i, err)
		}

		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: rule %d has %s >= %s", ErrInvalidTimeRange, i, start, end)
		}

		rules = append(rules, &domain.RecurringRule{
			DayOfWeek:   in.DayOfWeek,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: in.IsAvailable,
		})
	}

	return rules, nil
}

// buildOverrides конвертирует запрос в строки переопределения: одна
// закрывающая строка либо по строке на каждое рабочее окно
func (s *Service) buildOverrides(date types.DateString, req *models.SaveOverrideRequest) ([]*domain.ScheduleOverride, error) {
	if req.IsClosed {
		return []*domain.ScheduleOverride{{
			Date:     date,
			IsClosed: true,
			Reason:   req.Reason,
		}}, nil
	}

	if len(req.Windows) == 0 {
		return nil, ErrNoWindows
	}

	overrides := make([]*domain.ScheduleOverride, 0, len(req.Windows))
	for i, w := range req.Windows {
		start, err := types.NewTimeStringFromString(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: window %d startTime: %v", ErrInvalidInput, i, err)
		}
		end, err := types.NewTimeStringFromString(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: window %d endTime: %v", ErrInvalidInput, i, err)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: window %d has %s >= %s", ErrInvalidTimeRange, i, start, end)
		}

		overrides = append(overrides, &domain.ScheduleOverride{
			Date:      date,
			StartTime: &start,
			EndTime:   &end,
			Reason:    req.Reason,
		})
	}

	return overrides, nil
}
