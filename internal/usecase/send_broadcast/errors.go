package send_broadcast

import "errors"

var (
	// ErrBroadcastNotFound возвращается, когда рассылка не найдена
	ErrBroadcastNotFound = errors.New("broadcast not found")

	// ErrAlreadySent возвращается при повторной отправке
	ErrAlreadySent = errors.New("broadcast already sent")

	// ErrDeliveryFailed возвращается, когда шлюз не принял рассылку
	ErrDeliveryFailed = errors.New("broadcast delivery failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
