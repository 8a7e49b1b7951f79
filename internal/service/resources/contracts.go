package resources

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// Repository интерфейс репозитория справочной таблицы
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
}

// Row ограничение на указатель записи: ID и метки времени проставляет сервис и БД
type Row[T any] interface {
	*T
	domain.Resource
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
