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

var equipmentColumns = []string{"id", "name", "quantity", "base_fee", "is_active"}

// EquipmentUpdate частичное обновление инвентаря; nil-поля не изменяются
type EquipmentUpdate struct {
	Name     *string
	Quantity *int
	BaseFee  *float64
	IsActive *bool
}

// ListEquipment возвращает инвентарь, упорядоченный по ID
func (r *Repository) ListEquipment(ctx context.Context, onlyActive bool) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From("equipment").
		OrderBy("id ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEquipmentRows(rows)
}

// GetEquipment получает единицу инвентаря по ID
func (r *Repository) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From("equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.Equipment
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.Name, &e.Quantity, &e.BaseFee, &e.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - scan equipment: %v", ErrScanRow, err)
	}

	return &e, nil
}

// GetEquipmentByIDs получает инвентарь по набору ID.
// Если хотя бы один ID не найден, возвращает ErrEquipmentNotFound:
// ссылка на несуществующий инвентарь делает весь запрос недействительным.
func (r *Repository) GetEquipmentByIDs(ctx context.Context, ids []int64) ([]*domain.Equipment, error) {
	if len(ids) == 0 {
		return []*domain.Equipment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From("equipment").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items, err := scanEquipmentRows(rows)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]bool, len(items))
	for _, item := range items {
		found[item.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, ErrEquipmentNotFound
		}
	}

	return items, nil
}

// CreateEquipment создает единицу инвентаря
func (r *Repository) CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipment").
		Columns("name", "quantity", "base_fee", "is_active").
		Values(equipment.Name, equipment.Quantity, equipment.BaseFee, equipment.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEquipment - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&equipment.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateEquipment - execute insert: %v", ErrExecQuery, err)
	}

	return equipment, nil
}

// UpdateEquipment частично обновляет инвентарь и возвращает обновленную запись
func (r *Repository) UpdateEquipment(ctx context.Context, id int64, update EquipmentUpdate) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("equipment").Where(squirrel.Eq{"id": id})
	changed := false

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		changed = true
	}
	if update.Quantity != nil {
		updateBuilder = updateBuilder.Set("quantity", *update.Quantity)
		changed = true
	}
	if update.BaseFee != nil {
		updateBuilder = updateBuilder.Set("base_fee", *update.BaseFee)
		changed = true
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
		changed = true
	}

	if !changed {
		return r.GetEquipment(ctx, id)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateEquipment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateEquipment - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateEquipment - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrEquipmentNotFound
	}

	return r.GetEquipment(ctx, id)
}

func scanEquipmentRows(rows *sql.Rows) ([]*domain.Equipment, error) {
	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Quantity, &e.BaseFee, &e.IsActive); err != nil {
			return nil, fmt.Errorf("%w: scan equipment: %v", ErrScanRow, err)
		}
		items = append(items, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return items, nil
}
