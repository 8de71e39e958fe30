package booking

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
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

// bookingColumns колонки бронирования вместе с данными слота из JOIN
var bookingColumns = []string{
	"b.id",
	"b.resource_type",
	"b.resource_id",
	"b.user_id",
	"b.slot_id",
	"b.status",
	"b.purpose",
	"b.project_name",
	"b.notes",
	"b.participants_count",
	"b.approved_by",
	"b.resource_name",
	"b.resource_lab",
	"b.user_name",
	"b.created_at",
	"b.updated_at",
	"s.slot_date",
	"s.start_time",
	"s.end_time",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Проверка занятости слота и вставка должны выполняться в одной сериализуемой
// транзакции; частичный уникальный индекс по (resource_type, resource_id, slot_id)
// для активных статусов остается страховкой на случай гонки - его нарушение
// транслируется в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"resource_type",
			"resource_id",
			"user_id",
			"slot_id",
			"status",
			"purpose",
			"project_name",
			"notes",
			"participants_count",
			"resource_name",
			"resource_lab",
			"user_name",
		).
		Values(
			b.ResourceType,
			b.ResourceID,
			b.UserID,
			b.SlotID,
			b.Status,
			b.Purpose,
			b.ProjectName,
			b.Notes,
			b.ParticipantsCount,
			b.ResourceName,
			b.ResourceLab,
			b.UserName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID вместе с данными слота
// Внутри транзакции строка бронирования блокируется (FOR UPDATE), чтобы
// переходы статуса выполнялись без интерливинга между чтением и записью
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("booking_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"b.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// ListWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по виду ресурса, ресурсу, владельцу, статусу,
// лаборатории ресурса и периоду по дате слота.
// Результат отсортирован по (дата слота, время начала)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("booking_slots s ON s.id = b.slot_id")

	if filter.ResourceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.resource_type": *filter.ResourceType})
	}
	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.resource_id": *filter.ResourceID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.user_id": *filter.UserID})
	}
	if filter.Lab != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.resource_lab": *filter.Lab})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.slot_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if filter.OnlyActive {
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": activeStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("s.slot_date ASC, s.start_time ASC, b.id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ExistsActiveForSlot проверяет, есть ли активное бронирование пары (ресурс, слот)
// Быстрая user-facing проверка перед вставкой; гонку закрывает уникальный индекс
func (r *Repository) ExistsActiveForSlot(ctx context.Context, resourceType domain.ResourceType, resourceID, slotID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"resource_type": resourceType,
			"resource_id":   resourceID,
			"slot_id":       slotID,
			"status":        activeStatusStrings,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveForSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveForSlot - scan row: %w", ErrScanRow, err)
	}

	return true, nil
}

// CountActiveInWindow подсчитывает активные бронирования ресурса, чьи слоты
// пересекаются с окном [windowStart, windowEnd)
// Граничные случаи пересечением не считаются
func (r *Repository) CountActiveInWindow(ctx context.Context, resourceType domain.ResourceType, resourceID int64, windowStart, windowEnd time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings b").
		Join("booking_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{
			"b.resource_type": resourceType,
			"b.resource_id":   resourceID,
			"b.status":        activeStatusStrings,
		}).
		Where(squirrel.Expr("(s.slot_date + s.start_time) < ?", windowEnd)).
		Where(squirrel.Expr("(s.slot_date + s.end_time) > ?", windowStart)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveInWindow - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveInWindow - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// ListActiveSlotIDs возвращает ID слотов, занятых активными бронированиями
// ресурса на указанную дату
func (r *Repository) ListActiveSlotIDs(ctx context.Context, resourceType domain.ResourceType, resourceID int64, date time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("b.slot_id").
		From("bookings b").
		Join("booking_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{
			"b.resource_type": resourceType,
			"b.resource_id":   resourceID,
			"b.status":        activeStatusStrings,
			"s.slot_date":     date,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slotIDs := make([]int64, 0)
	for rows.Next() {
		var slotID int64
		if err := rows.Scan(&slotID); err != nil {
			return nil, fmt.Errorf("%w: ListActiveSlotIDs - scan slot_id: %w", ErrScanRow, err)
		}
		slotIDs = append(slotIDs, slotID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - rows error: %w", ErrScanRow, err)
	}

	return slotIDs, nil
}

// UpdateStatus обновляет статус бронирования
// Если approvedBy не nil, фиксирует актора в approved_by (approve/reject)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, approvedBy *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if approvedBy != nil {
		updateBuilder = updateBuilder.Set("approved_by", *approvedBy)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ResourceType,
		&b.ResourceID,
		&b.UserID,
		&b.SlotID,
		&b.Status,
		&b.Purpose,
		&b.ProjectName,
		&b.Notes,
		&b.ParticipantsCount,
		&b.ApprovedBy,
		&b.ResourceName,
		&b.ResourceLab,
		&b.UserName,
		&createdAt,
		&updatedAt,
		&b.SlotDate,
		&b.SlotStartTime,
		&b.SlotEndTime,
	)

	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ResourceType,
			&b.ResourceID,
			&b.UserID,
			&b.SlotID,
			&b.Status,
			&b.Purpose,
			&b.ProjectName,
			&b.Notes,
			&b.ParticipantsCount,
			&b.ApprovedBy,
			&b.ResourceName,
			&b.ResourceLab,
			&b.UserName,
			&createdAt,
			&updatedAt,
			&b.SlotDate,
			&b.SlotStartTime,
			&b.SlotEndTime,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
