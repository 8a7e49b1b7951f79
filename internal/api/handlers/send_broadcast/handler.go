package send_broadcast

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	sendBroadcast "github.com/m04kA/SMC-GymConsole/internal/usecase/send_broadcast"
)

const (
	msgNotFound       = "рассылка не найдена"
	msgAlreadySent    = "рассылка уже отправлена"
	msgDeliveryFailed = "шлюз рассылок не принял сообщение"
)

type Handler struct {
	useCase SendBroadcastUseCase
	logger  Logger
}

func NewHandler(useCase SendBroadcastUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/broadcasts/{broadcastId}/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	broadcastID := mux.Vars(r)["broadcastId"]
	if !handlers.ValidID(broadcastID) {
		h.logger.Warn("POST /broadcasts/{id}/send - Malformed broadcast id: broadcast_id=%q", broadcastID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendBroadcast.Request{BroadcastID: broadcastID})
	if err != nil {
		switch {
		case errors.Is(err, sendBroadcast.ErrBroadcastNotFound):
			h.logger.Warn("POST /broadcasts/{id}/send - Broadcast not found: broadcast_id=%s", broadcastID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sendBroadcast.ErrAlreadySent):
			h.logger.Warn("POST /broadcasts/{id}/send - Already sent: broadcast_id=%s", broadcastID)
			handlers.RespondConflict(w, msgAlreadySent)

		case errors.Is(err, sendBroadcast.ErrDeliveryFailed):
			h.logger.Error("POST /broadcasts/{id}/send - Delivery failed: broadcast_id=%s, error=%v", broadcastID, err)
			handlers.RespondBadGateway(w, msgDeliveryFailed)

		default:
			h.logger.Error("POST /broadcasts/{id}/send - Failed to send broadcast: broadcast_id=%s, error=%v", broadcastID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /broadcasts/{id}/send - Broadcast sent: broadcast_id=%s, recipients=%d", broadcastID, result.Recipients)
	handlers.RespondJSON(w, http.StatusOK, result)
}
