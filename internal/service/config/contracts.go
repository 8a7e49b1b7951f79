package config

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	Create(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	GetByBranch(ctx context.Context, branchID *string) (*domain.ScheduleConfig, error)
	GetConfigWithHierarchy(ctx context.Context, branchID *string) (*domain.ScheduleConfig, error)
	Update(ctx context.Context, id int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	DeleteByBranch(ctx context.Context, branchID *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
