package get_revenue

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// DatedRepository справочная таблица с датой операции (квитанции, гостевые визиты, расходы)
type DatedRepository[T any] interface {
	ListBetween(ctx context.Context, from, to domain.CalendarDate, branchID string) ([]T, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MoneyFormatter форматирование сумм
type MoneyFormatter interface {
	Currency(amount float64) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
