package attendance

import "errors"

var (
	// ErrMarkNotFound возвращается, когда отметка не найдена
	ErrMarkNotFound = errors.New("attendance.repository: mark not found")

	// ErrAlreadyMarked возвращается, если у сотрудника уже есть отметка на эту дату
	ErrAlreadyMarked = errors.New("attendance.repository: attendance already marked for date")

	// ErrEmployeeNotFound возвращается, если сотрудника нет в справочнике
	ErrEmployeeNotFound = errors.New("attendance.repository: employee not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("attendance.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("attendance.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("attendance.repository: failed to scan row")
)
