package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/dbmetrics"
	"github.com/mlevasseur/salon-booking-service/pkg/psqlbuilder"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// Repository репозиторий недельного расписания и overrides
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRecurringRules получает все строки недельного расписания,
// отсортированные по дню недели и времени начала
func (r *Repository) ListRecurringRules(ctx context.Context) ([]*domain.RecurringRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("availability_rules").
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.RecurringRule, 0)
	for rows.Next() {
		var rule domain.RecurringRule
		var startTime, endTime string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.DayOfWeek,
			&startTime,
			&endTime,
			&rule.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecurringRules - scan row: %v", ErrScanRow, err)
		}

		if rule.StartTime, err = types.NewTimeStringFromString(startTime); err != nil {
			return nil, fmt.Errorf("%w: ListRecurringRules - normalize start_time: %v", ErrScanRow, err)
		}
		if rule.EndTime, err = types.NewTimeStringFromString(endTime); err != nil {
			return nil, fmt.Errorf("%w: ListRecurringRules - normalize end_time: %v", ErrScanRow, err)
		}
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecurringRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceRecurringRules атомарно заменяет недельное расписание:
// удаляет все строки и вставляет новые. Вызывается внутри транзакции.
func (r *Repository) ReplaceRecurringRules(ctx context.Context, rules []*domain.RecurringRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRecurringRules - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRecurringRules - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns("day_of_week", "start_time", "end_time", "is_available")
	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(
			rule.DayOfWeek,
			rule.StartTime.String(),
			rule.EndTime.String(),
			rule.IsAvailable,
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRecurringRules - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRecurringRules - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListOverrides получает overrides в диапазоне дат [from, to] включительно
func (r *Repository) ListOverrides(ctx context.Context, from, to types.DateString) ([]*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"override_date",
		"is_closed",
		"start_time",
		"end_time",
		"reason",
		"created_at",
		"updated_at",
	).
		From("availability_overrides").
		Where(squirrel.GtOrEq{"override_date": from.String()}).
		Where(squirrel.LtOrEq{"override_date": to.String()}).
		OrderBy("override_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.ScheduleOverride, 0)
	for rows.Next() {
		var override domain.ScheduleOverride
		var date time.Time
		var startTime, endTime sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&override.ID,
			&date,
			&override.IsClosed,
			&startTime,
			&endTime,
			&override.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOverrides - scan row: %v", ErrScanRow, err)
		}

		override.Date = types.DateOf(date)
		if startTime.Valid {
			ts, err := types.NewTimeStringFromString(startTime.String)
			if err != nil {
				return nil, fmt.Errorf("%w: ListOverrides - normalize start_time: %v", ErrScanRow, err)
			}
			override.StartTime = &ts
		}
		if endTime.Valid {
			ts, err := types.NewTimeStringFromString(endTime.String)
			if err != nil {
				return nil, fmt.Errorf("%w: ListOverrides - normalize end_time: %v", ErrScanRow, err)
			}
			override.EndTime = &ts
		}
		override.CreatedAt = createdAt.Time
		override.UpdatedAt = updatedAt.Time

		overrides = append(overrides, &override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// ReplaceOverridesForDate атомарно заменяет overrides одной даты:
// удаляет существующие строки даты и вставляет новые.
// Вызывается внутри транзакции.
func (r *Repository) ReplaceOverridesForDate(ctx context.Context, date types.DateString, overrides []*domain.ScheduleOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_overrides").
		Where(squirrel.Eq{"override_date": date.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceOverridesForDate - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceOverridesForDate - execute delete: %v", ErrExecQuery, err)
	}

	if len(overrides) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_overrides").
		Columns("override_date", "is_closed", "start_time", "end_time", "reason")
	for _, o := range overrides {
		var startTime, endTime interface{}
		if o.StartTime != nil {
			startTime = o.StartTime.String()
		}
		if o.EndTime != nil {
			endTime = o.EndTime.String()
		}
		insertBuilder = insertBuilder.Values(date.String(), o.IsClosed, startTime, endTime, o.Reason)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceOverridesForDate - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceOverridesForDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteOverridesInRange удаляет overrides в диапазоне дат [from, to]
// включительно и возвращает число удаленных строк
func (r *Repository) DeleteOverridesInRange(ctx context.Context, from, to types.DateString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_overrides").
		Where(squirrel.GtOrEq{"override_date": from.String()}).
		Where(squirrel.LtOrEq{"override_date": to.String()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverridesInRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverridesInRange - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverridesInRange - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}
