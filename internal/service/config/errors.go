package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация филиала не найдена
	ErrConfigNotFound = errors.New("config not found")

	// ErrConfigConflict возвращается, если конфигурацию филиала создали параллельно
	ErrConfigConflict = errors.New("config was changed concurrently")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
