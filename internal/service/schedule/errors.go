package schedule

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrMarkNotFound возвращается, когда отметка посещаемости не найдена
	ErrMarkNotFound = errors.New("attendance mark not found")

	// ErrEmployeeNotFound возвращается, если сотрудника для отметки нет
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAlreadyMarked возвращается, если отметка на эту дату уже есть
	ErrAlreadyMarked = errors.New("attendance already marked for this date")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, если из текущего статуса нельзя перейти в новый
	ErrInvalidTransition = errors.New("booking status transition is not allowed")

	// ErrStatusChanged возвращается, если статус изменили между чтением и записью
	ErrStatusChanged = errors.New("booking status was changed concurrently")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
