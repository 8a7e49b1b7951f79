package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/service/config"
	"github.com/m04kA/SMC-GymConsole/internal/service/config/models"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "конфигурация не найдена"
	msgConflict           = "конфигурация изменена параллельно, повторите попытку"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule-config
// Без branchId в теле сохраняется глобальная конфигурация
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidInput):
			h.logger.Warn("PUT /schedule-config - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, config.ErrConfigConflict):
			h.logger.Warn("PUT /schedule-config - Concurrent update: branch_id=%v", req.BranchID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PUT /schedule-config - Failed to save config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule-config - Config saved successfully: config_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/schedule-config?branchId=
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	branchID := handlers.OptionalString(r.URL.Query(), "branchId")

	if err := h.service.Delete(r.Context(), branchID); err != nil {
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			h.logger.Warn("DELETE /schedule-config - Config not found: branch_id=%v", branchID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /schedule-config - Failed to delete config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule-config - Config deleted: branch_id=%v", branchID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
