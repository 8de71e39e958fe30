package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/pkg/dbmetrics"
	"github.com/labims/LIMS-BookingService/pkg/psqlbuilder"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
// Нарушение уникальности тройки (дата, начало, конец) транслируется в ErrSlotExists,
// чтобы вызывающая сторона могла перечитать слот, созданный конкурентным запросом
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
		).
		Values(
			s.Date,
			s.StartTime,
			s.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return s, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("booking_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByIdentity получает слот по тройке (дата, начало, конец)
func (r *Repository) GetByIdentity(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("booking_slots").
		Where(squirrel.Eq{
			"slot_date":  date,
			"start_time": start,
			"end_time":   end,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdentity - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByIdentity")
}

// ListInRange получает слоты за период [startDate, endDate] (обе границы включительно)
// Результат отсортирован по (дата, время начала)
func (r *Repository) ListInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("booking_slots").
		Where(squirrel.GtOrEq{"slot_date": startDate}).
		Where(squirrel.LtOrEq{"slot_date": endDate}).
		OrderBy("slot_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var createdAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan row: %w", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// ListOnDate получает слоты на конкретную дату, отсортированные по времени начала
func (r *Repository) ListOnDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	return r.ListInRange(ctx, date, date)
}

// scanSlot сканирует одну строку в слот
func (r *Repository) scanSlot(row *sql.Row, method string) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %w", ErrScanRow, method, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}
