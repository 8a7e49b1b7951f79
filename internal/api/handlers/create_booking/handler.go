package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	bookSlot "github.com/m04kA/SMC-GymConsole/internal/usecase/book_slot"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
	msgSlotClosed         = "слот закрыт для бронирования"
	msgSlotNotAvailable   = "в слоте недостаточно свободных мест"
	msgDateMismatch       = "дата бронирования не совпадает с датой слота"
	msgConcurrentUpdate   = "слот одновременно бронируют, повторите попытку"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// С slotId бронирование занимает места слота, без него создаётся как есть
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form calendar.BookingForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if slotID := strings.TrimSpace(derefOrEmpty(form.SlotID)); slotID != "" && !handlers.ValidID(slotID) {
		h.logger.Warn("POST /bookings - Malformed slot id: slot_id=%q", slotID)
		handlers.RespondNotFound(w, msgSlotNotFound)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{Form: form})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: member=%q, error=%v", form.MemberName, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%v", derefOrEmpty(form.SlotID))
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotClosed):
			h.logger.Warn("POST /bookings - Slot closed: slot_id=%v", derefOrEmpty(form.SlotID))
			handlers.RespondConflict(w, msgSlotClosed)

		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%v, participants=%d",
				derefOrEmpty(form.SlotID), form.Participants)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookSlot.ErrDateMismatch):
			h.logger.Warn("POST /bookings - Date mismatch: slot_id=%v, date=%s", derefOrEmpty(form.SlotID), form.Date)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateMismatch)

		case errors.Is(err, bookSlot.ErrConcurrentUpdate):
			h.logger.Warn("POST /bookings - Concurrent update: slot_id=%v", derefOrEmpty(form.SlotID))
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: member=%q, error=%v", form.MemberName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s",
		result.Booking.ID, result.Booking.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
