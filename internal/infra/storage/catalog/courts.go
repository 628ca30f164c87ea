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

var courtColumns = []string{"id", "name", "location", "type", "base_rate", "is_active"}

// CourtUpdate частичное обновление корта; nil-поля не изменяются
type CourtUpdate struct {
	Name     *string
	Location *string
	Type     *domain.CourtType
	BaseRate *float64
	IsActive *bool
}

// ListCourts возвращает корты, упорядоченные по ID.
// При onlyActive=true возвращаются только активные.
func (r *Repository) ListCourts(ctx context.Context, onlyActive bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From("courts").
		OrderBy("id ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var c domain.Court
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Type, &c.BaseRate, &c.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListCourts - scan court: %v", ErrScanRow, err)
		}
		courts = append(courts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// GetCourt получает корт по ID
func (r *Repository) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Court
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Name, &c.Location, &c.Type, &c.BaseRate, &c.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - scan court: %v", ErrScanRow, err)
	}

	return &c, nil
}

// CreateCourt создает новый корт
func (r *Repository) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("name", "location", "type", "base_rate", "is_active").
		Values(court.Name, court.Location, court.Type, court.BaseRate, court.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&court.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - execute insert: %v", ErrExecQuery, err)
	}

	return court, nil
}

// UpdateCourt частично обновляет корт и возвращает обновленную запись
func (r *Repository) UpdateCourt(ctx context.Context, id int64, update CourtUpdate) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("courts").Where(squirrel.Eq{"id": id})
	changed := false

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		changed = true
	}
	if update.Location != nil {
		updateBuilder = updateBuilder.Set("location", *update.Location)
		changed = true
	}
	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
		changed = true
	}
	if update.BaseRate != nil {
		updateBuilder = updateBuilder.Set("base_rate", *update.BaseRate)
		changed = true
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
		changed = true
	}

	if !changed {
		return r.GetCourt(ctx, id)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCourt - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCourt - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCourt - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrCourtNotFound
	}

	return r.GetCourt(ctx, id)
}
