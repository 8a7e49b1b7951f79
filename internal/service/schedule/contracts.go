package schedule

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	SetClosed(ctx context.Context, id string, closed bool) error
	Delete(ctx context.Context, id string) error
}

// AttendanceRepository интерфейс репозитория отметок посещаемости
type AttendanceRepository interface {
	Create(ctx context.Context, mark *domain.AttendanceMark) (*domain.AttendanceMark, error)
	Delete(ctx context.Context, id string) error
}

// Metrics счётчик операций расписания
type Metrics interface {
	IncScheduleOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
