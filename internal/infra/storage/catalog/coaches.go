package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/pkg/dbmetrics"
	"github.com/acornglobus/court-booking-service/pkg/psqlbuilder"
)

var coachColumns = []string{"id", "name", "bio", "city", "rate_per_hour", "is_active"}

// CoachUpdate частичное обновление тренера; nil-поля не изменяются.
// Windows (если не nil) заменяют недельное расписание целиком.
type CoachUpdate struct {
	Name        *string
	Bio         *string
	City        *string
	RatePerHour *float64
	IsActive    *bool
	Windows     []domain.AvailabilityWindow
}

// ListCoaches возвращает тренеров с их окнами доступности,
// упорядоченных по ID
func (r *Repository) ListCoaches(ctx context.Context, onlyActive bool) ([]*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(coachColumns...).
		From("coaches").
		OrderBy("id ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coaches := make([]*domain.Coach, 0)
	for rows.Next() {
		var c domain.Coach
		if err := rows.Scan(&c.ID, &c.Name, &c.Bio, &c.City, &c.RatePerHour, &c.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListCoaches - scan coach: %v", ErrScanRow, err)
		}
		coaches = append(coaches, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadWindows(ctx, executor, coaches); err != nil {
		return nil, err
	}

	return coaches, nil
}

// GetCoach получает тренера по ID вместе с окнами доступности
func (r *Repository) GetCoach(ctx context.Context, id int64) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(coachColumns...).
		From("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoach - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Coach
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Name, &c.Bio, &c.City, &c.RatePerHour, &c.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrCoachNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoach - scan coach: %v", ErrScanRow, err)
	}

	if err := r.loadWindows(ctx, executor, []*domain.Coach{&c}); err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateCoach создает тренера вместе с окнами доступности.
// Вызывается внутри транзакции, чтобы тренер не появился без расписания.
func (r *Repository) CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coaches").
		Columns("name", "bio", "city", "rate_per_hour", "is_active").
		Values(coach.Name, coach.Bio, coach.City, coach.RatePerHour, coach.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCoach - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&coach.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateCoach - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.insertWindows(ctx, executor, coach.ID, coach.Windows); err != nil {
		return nil, err
	}

	return coach, nil
}

// UpdateCoach частично обновляет тренера. Если update.Windows не nil,
// недельное расписание заменяется целиком (старые окна удаляются).
func (r *Repository) UpdateCoach(ctx context.Context, id int64, update CoachUpdate) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("coaches").Where(squirrel.Eq{"id": id})
	changed := false

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		changed = true
	}
	if update.Bio != nil {
		updateBuilder = updateBuilder.Set("bio", *update.Bio)
		changed = true
	}
	if update.City != nil {
		updateBuilder = updateBuilder.Set("city", *update.City)
		changed = true
	}
	if update.RatePerHour != nil {
		updateBuilder = updateBuilder.Set("rate_per_hour", *update.RatePerHour)
		changed = true
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
		changed = true
	}

	if changed {
		query, args, err := updateBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: UpdateCoach - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: UpdateCoach - execute update: %v", ErrExecQuery, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("%w: UpdateCoach - get rows affected: %v", ErrExecQuery, err)
		}
		if rowsAffected == 0 {
			return nil, ErrCoachNotFound
		}
	}

	if update.Windows != nil {
		deleteQuery, deleteArgs, err := psqlbuilder.Delete("coach_availability").
			Where(squirrel.Eq{"coach_id": id}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: UpdateCoach - build delete windows query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return nil, fmt.Errorf("%w: UpdateCoach - delete windows: %v", ErrExecQuery, err)
		}
		if err := r.insertWindows(ctx, executor, id, update.Windows); err != nil {
			return nil, err
		}
	}

	return r.GetCoach(ctx, id)
}

func (r *Repository) insertWindows(ctx context.Context, executor DBExecutor, coachID int64, windows []domain.AvailabilityWindow) error {
	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("coach_availability").
		Columns("coach_id", "day_of_week", "start_hour", "end_hour")
	for _, w := range windows {
		insertBuilder = insertBuilder.Values(coachID, w.DayOfWeek, w.StartHour, w.EndHour)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertWindows - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertWindows - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) loadWindows(ctx context.Context, executor DBExecutor, coaches []*domain.Coach) error {
	if len(coaches) == 0 {
		return nil
	}

	ids := make([]int64, len(coaches))
	byID := make(map[int64]*domain.Coach, len(coaches))
	for i, c := range coaches {
		ids[i] = c.ID
		byID[c.ID] = c
	}

	query, args, err := psqlbuilder.Select("coach_id", "day_of_week", "start_hour", "end_hour").
		From("coach_availability").
		Where(squirrel.Eq{"coach_id": ids}).
		OrderBy("coach_id ASC, day_of_week ASC, start_hour ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var coachID int64
		var w domain.AvailabilityWindow
		if err := rows.Scan(&coachID, &w.DayOfWeek, &w.StartHour, &w.EndHour); err != nil {
			return fmt.Errorf("%w: loadWindows - scan window: %v", ErrScanRow, err)
		}
		if c, ok := byID[coachID]; ok {
			c.Windows = append(c.Windows, w)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadWindows - rows error: %v", ErrScanRow, err)
	}

	return nil
}
