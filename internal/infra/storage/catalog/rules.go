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

var ruleColumns = []string{"id", "name", "description", "rule_type", "adjustment", "amount", "start_hour", "end_hour", "is_active"}

// RuleUpdate частичное обновление правила; nil-поля не изменяются.
// Spec (если не nil) заменяет вид правила и его параметры целиком.
type RuleUpdate struct {
	Name        *string
	Description *string
	Spec        domain.RuleSpec
	IsActive    *bool
}

// ListRules возвращает правила ценообразования, упорядоченные по ID
func (r *Repository) ListRules(ctx context.Context, onlyActive bool) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		OrderBy("id ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// CreateRule создает правило ценообразования
func (r *Repository) CreateRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startHour, endHour := ruleHours(rule.Spec)

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns("name", "description", "rule_type", "adjustment", "amount", "start_hour", "end_hour", "is_active").
		Values(
			rule.Name,
			rule.Description,
			rule.Spec.Type(),
			rule.Spec.AdjustmentKind(),
			rule.Spec.RuleAmount(),
			startHour,
			endHour,
			rule.IsActive,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRule - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateRule - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// UpdateRule частично обновляет правило и возвращает обновленную запись
func (r *Repository) UpdateRule(ctx context.Context, id int64, update RuleUpdate) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("pricing_rules").Where(squirrel.Eq{"id": id})
	changed := false

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		changed = true
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
		changed = true
	}
	if update.Spec != nil {
		startHour, endHour := ruleHours(update.Spec)
		updateBuilder = updateBuilder.
			Set("rule_type", update.Spec.Type()).
			Set("adjustment", update.Spec.AdjustmentKind()).
			Set("amount", update.Spec.RuleAmount()).
			Set("start_hour", startHour).
			Set("end_hour", endHour)
		changed = true
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
		changed = true
	}

	if !changed {
		return r.getRule(ctx, id)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRule - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrRuleNotFound
	}

	return r.getRule(ctx, id)
}

func (r *Repository) getRule(ctx context.Context, id int64) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getRule - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}

	return rule, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRule читает строку pricing_rules и собирает типизированный вариант
// правила. Неизвестный rule_type — ошибка данных, а не молчаливый пропуск.
func scanRule(row rowScanner) (*domain.PricingRule, error) {
	var (
		rule       domain.PricingRule
		ruleType   domain.RuleType
		adjustment domain.Adjustment
		amount     float64
		startHour  sql.NullInt64
		endHour    sql.NullInt64
	)

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Description,
		&ruleType,
		&adjustment,
		&amount,
		&startHour,
		&endHour,
		&rule.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan pricing rule: %v", ErrScanRow, err)
	}

	switch ruleType {
	case domain.RulePeakHour:
		rule.Spec = domain.PeakHourRule{
			StartHour:  int(startHour.Int64),
			EndHour:    int(endHour.Int64),
			Adjustment: adjustment,
			Amount:     amount,
		}
	case domain.RuleWeekend:
		rule.Spec = domain.WeekendRule{Adjustment: adjustment, Amount: amount}
	case domain.RuleIndoorPremium:
		rule.Spec = domain.IndoorPremiumRule{Adjustment: adjustment, Amount: amount}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, ruleType)
	}

	return &rule, nil
}

// ruleHours возвращает колонки start_hour/end_hour для варианта правила.
// Часы имеют смысл только для PEAK_HOUR, остальные пишут NULL.
func ruleHours(spec domain.RuleSpec) (*int, *int) {
	if peak, ok := spec.(domain.PeakHourRule); ok {
		return &peak.StartHour, &peak.EndHour
	}
	return nil, nil
}
