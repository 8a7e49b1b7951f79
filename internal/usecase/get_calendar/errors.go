package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах месяца или даты
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
