package models

import (
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// UpsertConfigRequest запрос на сохранение конфигурации расписания.
// BranchID == nil - глобальная конфигурация
type UpsertConfigRequest struct {
	BranchID            *string `json:"branchId,omitempty" validate:"omitempty,uuid"`
	SlotDurationMinutes int     `json:"slotDurationMinutes" validate:"min=5,max=480"`
	DefaultCapacity     int     `json:"defaultCapacity" validate:"min=1,max=500"`
	DefaultPrice        float64 `json:"defaultPrice" validate:"gte=0"`
}

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		BranchID:            r.BranchID,
		SlotDurationMinutes: r.SlotDurationMinutes,
		DefaultCapacity:     r.DefaultCapacity,
		DefaultPrice:        r.DefaultPrice,
	}
}

// ConfigResponse действующая конфигурация расписания
type ConfigResponse struct {
	ID                  int64      `json:"id,omitempty"`
	BranchID            *string    `json:"branchId,omitempty"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	DefaultCapacity     int        `json:"defaultCapacity"`
	DefaultPrice        float64    `json:"defaultPrice"`
	IsGlobal            bool       `json:"isGlobal"`
	IsDefault           bool       `json:"isDefault"` // в БД нет ни филиальной, ни глобальной конфигурации
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                  c.ID,
		BranchID:            c.BranchID,
		SlotDurationMinutes: c.SlotDurationMinutes,
		DefaultCapacity:     c.DefaultCapacity,
		DefaultPrice:        c.DefaultPrice,
		IsGlobal:            c.IsGlobalConfig(),
		IsDefault:           c.ID == 0,
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
