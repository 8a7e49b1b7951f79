package resource

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("resource.repository: record not found")

	// ErrDuplicate возвращается при нарушении уникального индекса (номер квитанции, серийный номер)
	ErrDuplicate = errors.New("resource.repository: duplicate record")

	// ErrNoDateColumn возвращается при выборке за период из таблицы без даты
	ErrNoDateColumn = errors.New("resource.repository: table has no date column")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)
