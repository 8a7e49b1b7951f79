package get_schedule_config

import (
	"net/http"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
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

// Handle GET /api/v1/schedule-config
// Query params: branchId (опционально). Без сохранённой конфигурации
// возвращаются значения по умолчанию с isDefault=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID := handlers.OptionalString(r.URL.Query(), "branchId")

	result, err := h.service.Get(r.Context(), branchID)
	if err != nil {
		h.logger.Error("GET /schedule-config - Failed to get config: branch_id=%v, error=%v", branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule-config - Config retrieved successfully: config_id=%d, default=%t", result.ID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
