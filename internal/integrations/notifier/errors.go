package notifier

import "errors"

var (
	// ErrRejected возвращается, когда шлюз отклонил рассылку (4xx)
	ErrRejected = errors.New("notifier client: broadcast rejected")

	// ErrUnavailable возвращается при недоступности шлюза, таймауте или 5xx
	ErrUnavailable = errors.New("notifier client: gateway unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")
)
