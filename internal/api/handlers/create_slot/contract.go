package create_slot

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
	createSlot "github.com/m04kA/SMC-GymConsole/internal/usecase/create_slot"
)

type CreateSlotUseCase interface {
	Execute(ctx context.Context, req *createSlot.Request) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
