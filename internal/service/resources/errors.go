package resources

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate возвращается при нарушении уникальности (номер квитанции, серийный номер)
	ErrDuplicate = errors.New("record already exists")

	// ErrUnknownFilter возвращается при фильтре по полю, которое таблица не поддерживает
	ErrUnknownFilter = errors.New("unknown filter field")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
