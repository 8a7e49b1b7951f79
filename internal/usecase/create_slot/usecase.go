package create_slot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

const operation = "create_slot"

// UseCase use case для создания слота расписания
type UseCase struct {
	slotRepo SlotRepository
	configs  ConfigResolver
	metrics  Metrics
	newID    func() string
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, configs ConfigResolver, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		configs:  configs,
		metrics:  metrics,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// Execute создает слот. Незаполненные длительность, вместимость и цена
// берутся из конфигурации филиала, затем глобальной, затем встроенной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.SlotResponse, error) {
	form := req.Form
	uc.logger.Info("CreateSlot: date=%s, time=%s, title=%q", form.Date, form.Time, form.Title)

	defaults, err := uc.configs.Resolve(ctx, form.BranchID)
	if err != nil {
		uc.logger.Error("CreateSlot: failed to resolve schedule config: %v", err)
		uc.metrics.IncScheduleOperation(operation, "error")
		return nil, fmt.Errorf("%w: failed to resolve config: %v", ErrInternal, err)
	}

	slot, err := calendar.NewSlot(form, uc.newID(), defaults)
	if err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		uc.metrics.IncScheduleOperation(operation, "rejected")
		return nil, err
	}

	created, err := uc.slotRepo.Create(ctx, &slot)
	if err != nil {
		uc.logger.Error("CreateSlot: failed to create slot: %v", err)
		uc.metrics.IncScheduleOperation(operation, "error")
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	uc.metrics.IncScheduleOperation(operation, "ok")
	uc.logger.Info("CreateSlot: slot id=%s created on %s at %s", created.ID, created.Date, created.Time)

	resp := models.FromDomainSlot(*created)
	return &resp, nil
}
