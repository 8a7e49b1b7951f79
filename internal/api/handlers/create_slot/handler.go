package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	createSlot "github.com/m04kA/SMC-GymConsole/internal/usecase/create_slot"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form calendar.SlotForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.useCase.Execute(r.Context(), &createSlot.Request{Form: form})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidInput):
			h.logger.Warn("POST /slots - Validation failed: date=%s, time=%s, error=%v", form.Date, form.Time, err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /slots - Failed to create slot: date=%s, error=%v", form.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%s, date=%s, time=%s", slot.ID, slot.Date, slot.Time)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
