package attendance

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

// Repository репозиторий отметок посещаемости сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория посещаемости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отметку. Одна отметка на сотрудника в день (уникальный индекс)
func (r *Repository) Create(ctx context.Context, mark *domain.AttendanceMark) (*domain.AttendanceMark, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("attendance_marks").
		Columns("id", "employee_id", "mark_date", "check_in", "check_out", "status").
		Values(mark.ID, mark.EmployeeID, mark.Date, mark.CheckIn, mark.CheckOut, mark.Status).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrAlreadyMarked
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	mark.CreatedAt = createdAt.Time
	return mark, nil
}

// ListByEmployee отметки сотрудника за период [from, to], по возрастанию даты
func (r *Repository) ListByEmployee(ctx context.Context, employeeID string, from, to domain.CalendarDate) ([]*domain.AttendanceMark, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"employee_id",
		"mark_date",
		"check_in",
		"check_out",
		"status",
		"created_at",
	).
		From("attendance_marks").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("mark_date ASC")

	if !from.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"mark_date": from})
	}
	if !to.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"mark_date": to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	marks := make([]*domain.AttendanceMark, 0)
	for rows.Next() {
		var mark domain.AttendanceMark
		var createdAt sql.NullTime

		err := rows.Scan(
			&mark.ID,
			&mark.EmployeeID,
			&mark.Date,
			&mark.CheckIn,
			&mark.CheckOut,
			&mark.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmployee - scan row: %v", ErrScanRow, err)
		}

		mark.CreatedAt = createdAt.Time
		marks = append(marks, &mark)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - rows error: %v", ErrScanRow, err)
	}

	return marks, nil
}

// Delete удаляет отметку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("attendance_marks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMarkNotFound
	}

	return nil
}
