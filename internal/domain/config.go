package domain

import "time"

// ScheduleConfig значения по умолчанию для новых слотов.
// Поддерживает иерархию:
// 1. Конфигурация филиала (branch_id)
// 2. Глобальная конфигурация (branch_id IS NULL)
// 3. Встроенные значения (Default*)
type ScheduleConfig struct {
	ID                  int64
	BranchID            *string // NULL = config for all branches
	SlotDurationMinutes int
	DefaultCapacity     int
	DefaultPrice        float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsGlobalConfig returns true if the configuration applies to all branches
func (c *ScheduleConfig) IsGlobalConfig() bool {
	return c.BranchID == nil
}

// DefaultScheduleConfig встроенная конфигурация, если в БД ничего нет
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		DefaultCapacity:     DefaultSlotCapacity,
		DefaultPrice:        0,
	}
}
