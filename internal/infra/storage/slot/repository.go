package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymConsole/pkg/pgerrors"
	"github.com/m04kA/SMC-GymConsole/pkg/psqlbuilder"
)

// bookedColumn занятость слота: участники активных бронирований.
// Счётчик не хранится, поэтому удаление и отмена бронирования сразу освобождают места
const bookedColumn = "(SELECT COALESCE(SUM(b.participants), 0) FROM bookings b " +
	"WHERE b.slot_id = s.id AND b.status <> 'cancelled') AS booked"

var selectColumns = []string{
	"s.id",
	"s.slot_date",
	"s.start_time",
	"s.duration_minutes",
	"s.title",
	"s.instructor",
	"s.branch_id",
	"s.capacity",
	bookedColumn,
	"s.price",
	"s.closed",
	"s.created_at",
	"s.updated_at",
}

// Filter фильтр выборки слотов
type Filter struct {
	From     domain.CalendarDate // Начало периода (включительно), пустая - без ограничения
	To       domain.CalendarDate // Конец периода (включительно), пустая - без ограничения
	BranchID *string
}

// getByIDQuery строит выборку одного слота. forUpdate блокирует строку слота,
// но не строки бронирований из подзапроса занятости
func getByIDQuery(id string, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("slots s").
		Where(squirrel.Eq{"s.id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	return selectBuilder.ToSql()
}

func listQuery(filter Filter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("slots s").
		OrderBy("s.slot_date ASC", "s.start_time ASC")

	if !filter.From.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.slot_date": filter.From})
	}
	if !filter.To.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.slot_date": filter.To})
	}
	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.branch_id": *filter.BranchID})
	}

	return selectBuilder.ToSql()
}

// Repository репозиторий слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет слот. ID генерируется приложением
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"id",
			"slot_date",
			"start_time",
			"duration_minutes",
			"title",
			"instructor",
			"branch_id",
			"capacity",
			"price",
			"closed",
		).
		Values(
			slot.ID,
			slot.Date,
			slot.Time,
			slot.DurationMinutes,
			slot.Title,
			slot.Instructor,
			slot.BranchID,
			slot.Capacity,
			slot.Price,
			slot.Closed,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот по ID вместе с занятостью.
// Внутри транзакции строка слота блокируется (FOR UPDATE) для бронирования
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getByIDQuery(id, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: GetByID: %v", ErrConcurrentUpdate, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// List получает слоты за период, отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Touch обновляет updated_at слота.
// Вызывается при бронировании, чтобы параллельная сериализуемая транзакция
// на этом же слоте получила конфликт
func (r *Repository) Touch(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Touch - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, executor, "Touch", query, args)
}

// SetClosed закрывает или открывает слот для бронирования
func (r *Repository) SetClosed(ctx context.Context, id string, closed bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("closed", closed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetClosed - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, executor, "SetClosed", query, args)
}

// Delete удаляет слот. Бронирования слота не удаляются
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffected(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, method, err)
		}
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row scanner) (*domain.Slot, error) {
	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.Date,
		&slot.Time,
		&slot.DurationMinutes,
		&slot.Title,
		&slot.Instructor,
		&slot.BranchID,
		&slot.Capacity,
		&slot.Booked,
		&slot.Price,
		&slot.Closed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
