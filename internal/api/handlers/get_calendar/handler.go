package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-GymConsole/internal/usecase/get_calendar"
)

const msgInvalidParams = "некорректные параметры календаря"

// Handler месяц календаря; один экземпляр на вид (слоты или бронирования)
type Handler struct {
	useCase GetCalendarUseCase
	view    getCalendar.View
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, view getCalendar.View, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		view:    view,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/slots, GET /api/v1/calendar/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(h.view, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /calendar/%s - Invalid parameters: %v", h.view, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/%s - Invalid parameters: %v", h.view, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar/%s - Failed to build calendar: error=%v", h.view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/%s - Calendar built successfully: month=%s", h.view, result.Label)
	handlers.RespondJSON(w, http.StatusOK, result)
}
