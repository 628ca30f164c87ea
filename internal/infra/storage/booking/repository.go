package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/pkg/dbmetrics"
	"github.com/acornglobus/court-booking-service/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// Имена constraint'ов из migrations/0001_init.sql
const (
	constraintReferenceUnique = "bookings_reference_key"
	constraintCourtNoOverlap  = "bookings_court_no_overlap"
	constraintCoachNoOverlap  = "bookings_coach_no_overlap"
)

var bookingColumns = []string{
	"id",
	"reference",
	"user_name",
	"contact",
	"court_id",
	"coach_id",
	"start_time",
	"duration_hrs",
	"total_price",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
}

// Repository репозиторий для работы с бронированиями и строками инвентаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со строками инвентаря.
// Если в контексте передана активная транзакция, обе вставки выполняются
// в ней — частично записанных бронирований не бывает. Usecase коммита
// всегда вызывает Create внутри сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"user_name",
			"contact",
			"court_id",
			"coach_id",
			"start_time",
			"duration_hrs",
			"total_price",
			"status",
			"notes",
		).
		Values(
			booking.Reference,
			booking.UserName,
			booking.Contact,
			booking.CourtID,
			booking.CoachID,
			booking.StartTime,
			booking.DurationHrs,
			booking.TotalPrice,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		return nil, translateCreateError(err)
	}
	booking.CreatedAt = createdAt.Time

	for _, line := range booking.Lines {
		lineQuery, lineArgs, err := psqlbuilder.Insert("booking_equipment").
			Columns("booking_id", "equipment_id", "quantity").
			Values(booking.ID, line.EquipmentID, line.Quantity).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build line insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, lineQuery, lineArgs...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert equipment line: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе со строками инвентаря
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadLines(ctx, executor, []*domain.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetConfirmedForDay получает все CONFIRMED бронирования на календарную
// дату day (локальную для площадки), вместе со строками инвентаря.
// Загружается один раз на весь день: стоимость ограничена числом
// бронирований дня, а не числом слотов.
//
// Внутри транзакции строки блокируются через FOR UPDATE — это часть
// защиты коммита от гонки двух конкурентных бронирований.
func (r *Repository) GetConfirmedForDay(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		OrderBy("start_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadLines(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetRecent получает последние бронирования (новые первыми) с
// денормализованными именами корта и тренера
func (r *Repository) GetRecent(ctx context.Context, limit int) ([]*domain.BookingSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.reference",
		"b.user_name",
		"b.court_id",
		"c.name AS court_name",
		"b.coach_id",
		"co.name AS coach_name",
		"b.start_time",
		"b.duration_hrs",
		"b.total_price",
		"b.status",
		"b.created_at",
	).
		From("bookings b").
		Join("courts c ON c.id = b.court_id").
		LeftJoin("coaches co ON co.id = b.coach_id").
		OrderBy("b.created_at DESC, b.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summaries := make([]*domain.BookingSummary, 0)
	for rows.Next() {
		var s domain.BookingSummary
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Reference,
			&s.UserName,
			&s.CourtID,
			&s.CourtName,
			&s.CoachID,
			&s.CoachName,
			&s.StartTime,
			&s.DurationHrs,
			&s.TotalPrice,
			&s.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRecent - scan summary: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRecent - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadSummaryLines(ctx, executor, summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// Cancel переводит бронирование в статус CANCELLED.
// Отмена — переход статуса, строки никогда не удаляются.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо оно уже отменено
		if _, err := r.GetByID(ctx, id); errors.Is(err, ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return ErrCannotCancel
	}

	return nil
}

// loadLines подгружает строки инвентаря для набора бронирований
func (r *Repository) loadLines(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select("booking_id", "equipment_id", "quantity").
		From("booking_equipment").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC, equipment_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var line domain.EquipmentLine
		if err := rows.Scan(&bookingID, &line.EquipmentID, &line.Quantity); err != nil {
			return fmt.Errorf("%w: loadLines - scan line: %v", ErrScanRow, err)
		}
		if b, ok := byID[bookingID]; ok {
			b.Lines = append(b.Lines, line)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadLines - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// loadSummaryLines подгружает строки инвентаря для строк истории
func (r *Repository) loadSummaryLines(ctx context.Context, executor DBExecutor, summaries []*domain.BookingSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	ids := make([]int64, len(summaries))
	byID := make(map[int64]*domain.BookingSummary, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID
		byID[s.ID] = s
	}

	query, args, err := psqlbuilder.Select("booking_id", "equipment_id", "quantity").
		From("booking_equipment").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC, equipment_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSummaryLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSummaryLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var line domain.EquipmentLine
		if err := rows.Scan(&bookingID, &line.EquipmentID, &line.Quantity); err != nil {
			return fmt.Errorf("%w: loadSummaryLines - scan line: %v", ErrScanRow, err)
		}
		if s, ok := byID[bookingID]; ok {
			s.Lines = append(s.Lines, line)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadSummaryLines - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserName,
		&b.Contact,
		&b.CourtID,
		&b.CoachID,
		&b.StartTime,
		&b.DurationHrs,
		&b.TotalPrice,
		&b.Status,
		&b.Notes,
		&b.CancelledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// translateCreateError превращает нарушения constraint'ов БД в доменные
// ошибки. Exclusion constraint'ы — последний рубеж защиты от двойного
// бронирования на уровне хранилища.
func translateCreateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case string(pqErr.Code) == pgUniqueViolation && pqErr.Constraint == constraintReferenceUnique:
			return ErrDuplicateReference
		case string(pqErr.Code) == pgExclusionViolation && pqErr.Constraint == constraintCourtNoOverlap:
			return ErrCourtOverlap
		case string(pqErr.Code) == pgExclusionViolation && pqErr.Constraint == constraintCoachNoOverlap:
			return ErrCoachOverlap
		}
	}
	return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
}
