package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот для бронирования не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotClosed возвращается, когда слот закрыт для бронирования
	ErrSlotClosed = errors.New("book_slot: slot is closed")

	// ErrSlotNotAvailable возвращается, когда в слоте не хватает свободных мест
	ErrSlotNotAvailable = errors.New("book_slot: slot is not available")

	// ErrDateMismatch возвращается, когда дата бронирования не совпадает с датой слота
	ErrDateMismatch = errors.New("book_slot: booking date differs from slot date")

	// ErrConcurrentUpdate возвращается, если слот бронировали одновременно и транзакция не прошла
	ErrConcurrentUpdate = errors.New("book_slot: slot was booked concurrently, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
