package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/storage"
	"github.com/m04kA/BookingHub/pkg/dbmetrics"
	"github.com/m04kA/BookingHub/pkg/psqlbuilder"
)

const tableName = "time_slots"

var columns = []string{"id", "service_id", "slot_date", "start_time", "available"}

// Repository репозиторий слотов в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет слот; ключ (service_id, slot_date, start_time) уникален
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(slot.ID, slot.ServiceID, slot.Date, slot.StartTime, slot.Available).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrSlotAlreadyExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateBatch добавляет слоты пачкой, существующие ключи пропускаются
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(tableName).Columns(columns...)
	for _, s := range slots {
		insert = insert.Values(s.ID, s.ServiceID, s.Date, s.StartTime, s.Available)
	}

	query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByKey получает слот по ключу
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(keyCondition(key))

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListAvailable возвращает свободные слоты услуги на дату, по возрастанию времени
func (r *Repository) ListAvailable(ctx context.Context, serviceID string, date time.Time) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"service_id": serviceID,
			"slot_date":  domain.DateOf(date),
			"available":  true,
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailable - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Reserve атомарно переводит слот из свободного в занятый
// Возвращает ErrSlotNotFound, если слота нет, и ErrSlotNotAvailable, если он уже занят
func (r *Repository) Reserve(ctx context.Context, key domain.SlotKey) error {
	return r.setAvailability(ctx, key, false, "Reserve")
}

// Release освобождает слот; повторное освобождение не является ошибкой
func (r *Repository) Release(ctx context.Context, key domain.SlotKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("available", true).
		Where(keyCondition(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// setAvailability compare-and-set флага available
func (r *Repository) setAvailability(ctx context.Context, key domain.SlotKey, available bool, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("available", available).
		Where(keyCondition(key)).
		Where(squirrel.Eq{"available": !available}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		// Конкурентная транзакция уже изменила этот слот
		if storage.IsSerializationFailure(err) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 1 {
		return nil
	}

	// Ни одна строка не обновлена: слота нет или флаг уже выставлен
	if _, err := r.GetByKey(ctx, key); err != nil {
		return err
	}

	return ErrSlotNotAvailable
}

func keyCondition(key domain.SlotKey) squirrel.Eq {
	return squirrel.Eq{
		"service_id": key.ServiceID,
		"slot_date":  domain.DateOf(key.Date),
		"start_time": key.StartTime,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	if err := row.Scan(
		&slot.ID,
		&slot.ServiceID,
		&slot.Date,
		&slot.StartTime,
		&slot.Available,
	); err != nil {
		return nil, err
	}
	slot.Date = domain.DateOf(slot.Date)
	return &slot, nil
}
