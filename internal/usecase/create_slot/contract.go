package create_slot

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
}

// ConfigResolver действующая конфигурация расписания филиала
type ConfigResolver interface {
	Resolve(ctx context.Context, branchID *string) (*domain.ScheduleConfig, error)
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
