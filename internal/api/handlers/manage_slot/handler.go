package manage_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingClosed      = "поле closed обязательно"
	msgNotFound           = "слот не найден"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleClose PATCH /api/v1/slots/{slotId}/closed
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	if !handlers.ValidID(slotID) {
		h.respondError(w, "PATCH /slots/{id}/closed", slotID, schedule.ErrSlotNotFound)
		return
	}

	var req CloseSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id}/closed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Closed == nil {
		h.logger.Warn("PATCH /slots/{id}/closed - Missing closed flag: slot_id=%s", slotID)
		handlers.RespondBadRequest(w, msgMissingClosed)
		return
	}

	if err := h.service.SetSlotClosed(r.Context(), slotID, *req.Closed); err != nil {
		h.respondError(w, "PATCH /slots/{id}/closed", slotID, err)
		return
	}

	h.logger.Info("PATCH /slots/{id}/closed - Slot updated: slot_id=%s, closed=%t", slotID, *req.Closed)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleDelete DELETE /api/v1/slots/{slotId}
// Бронирования слота остаются, ссылка на слот у них слабая
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	if !handlers.ValidID(slotID) {
		h.respondError(w, "DELETE /slots/{id}", slotID, schedule.ErrSlotNotFound)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), slotID); err != nil {
		h.respondError(w, "DELETE /slots/{id}", slotID, err)
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, route, slotID string, err error) {
	switch {
	case errors.Is(err, schedule.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found: slot_id=%s", route, slotID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: slot_id=%s, error=%v", route, slotID, err)
		handlers.RespondInternalError(w)
	}
}
