package resource

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

// Repository репозиторий справочной таблицы (клиенты, сотрудники, расходы, ...)
type Repository[T any, PT Row[T]] struct {
	db    DBExecutor
	table Table[T]
}

// NewRepository создает репозиторий для таблицы
func NewRepository[T any, PT Row[T]](db DBExecutor, table Table[T]) *Repository[T, PT] {
	return &Repository[T, PT]{db: db, table: table}
}

// Name имя таблицы
func (r *Repository[T, PT]) Name() string {
	return r.table.Name
}

func (r *Repository[T, PT]) selectColumns() []string {
	cols := make([]string, 0, len(r.table.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, r.table.Columns...)
	cols = append(cols, "created_at", "updated_at")
	return cols
}

// Create сохраняет запись. ID генерируется приложением
func (r *Repository[T, PT]) Create(ctx context.Context, item *T) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append([]string{"id"}, r.table.Columns...)
	values := append([]interface{}{PT(item).GetID()}, r.table.Values(item)...)

	query, args, err := psqlbuilder.Insert(r.table.Name).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s.Create - build insert query: %v", ErrBuildQuery, r.table.Name, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: %s.Create - execute insert: %v", ErrExecQuery, r.table.Name, err)
	}

	PT(item).SetTimestamps(createdAt.Time, updatedAt.Time)
	return nil
}

// GetByID получает запись по ID
func (r *Repository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(r.selectColumns()...).
		From(r.table.Name).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s.GetByID - build select query: %v", ErrBuildQuery, r.table.Name, err)
	}

	item, err := r.scan(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s.GetByID - scan row: %v", ErrScanRow, r.table.Name, err)
	}

	return item, nil
}

// List получает все записи таблицы, сначала новые.
// Поиск, фильтры и пагинация выполняются в памяти
func (r *Repository[T, PT]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx, "List", nil)
}

// ListBetween записи за период [from, to] по колонке даты таблицы.
// branchID == "" не ограничивает филиал
func (r *Repository[T, PT]) ListBetween(ctx context.Context, from, to domain.CalendarDate, branchID string) ([]T, error) {
	if r.table.DateColumn == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoDateColumn, r.table.Name)
	}

	where := squirrel.And{
		squirrel.GtOrEq{r.table.DateColumn: from},
		squirrel.LtOrEq{r.table.DateColumn: to},
	}
	if branchID != "" {
		where = append(where, squirrel.Eq{"branch_id": branchID})
	}
	return r.list(ctx, "ListBetween", where)
}

func (r *Repository[T, PT]) list(ctx context.Context, method string, where squirrel.Sqlizer) ([]T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(r.selectColumns()...).
		From(r.table.Name).
		OrderBy("created_at DESC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s - build select query: %v", ErrBuildQuery, r.table.Name, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s - execute query: %v", ErrExecQuery, r.table.Name, method, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s - scan row: %v", ErrScanRow, r.table.Name, method, err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s.%s - rows error: %v", ErrScanRow, r.table.Name, method, err)
	}

	return items, nil
}

// Update перезаписывает все колонки записи
func (r *Repository[T, PT]) Update(ctx context.Context, item *T) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values := r.table.Values(item)
	updateBuilder := psqlbuilder.Update(r.table.Name)
	for i, column := range r.table.Columns {
		updateBuilder = updateBuilder.Set(column, values[i])
	}

	query, args, err := updateBuilder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": PT(item).GetID()}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s.Update - build update query: %v", ErrBuildQuery, r.table.Name, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: %s.Update - execute update: %v", ErrExecQuery, r.table.Name, err)
	}

	PT(item).SetTimestamps(createdAt.Time, updatedAt.Time)
	return nil
}

// Delete удаляет запись
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(r.table.Name).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s.Delete - build delete query: %v", ErrBuildQuery, r.table.Name, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s.Delete - execute delete: %v", ErrExecQuery, r.table.Name, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s.Delete - get rows affected: %v", ErrExecQuery, r.table.Name, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository[T, PT]) scan(row scanner) (*T, error) {
	item := new(T)
	var id string
	var createdAt, updatedAt sql.NullTime

	targets := make([]interface{}, 0, len(r.table.Columns)+3)
	targets = append(targets, &id)
	targets = append(targets, r.table.Targets(item)...)
	targets = append(targets, &createdAt, &updatedAt)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	PT(item).SetID(id)
	PT(item).SetTimestamps(createdAt.Time, updatedAt.Time)
	return item, nil
}
