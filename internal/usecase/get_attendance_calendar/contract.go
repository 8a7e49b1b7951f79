package get_attendance_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// EmployeeRepository справочник сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// AttendanceRepository интерфейс репозитория отметок посещаемости
type AttendanceRepository interface {
	ListByEmployee(ctx context.Context, employeeID string, from, to domain.CalendarDate) ([]*domain.AttendanceMark, error)
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
