package get_attendance_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	getAttendanceCalendar "github.com/m04kA/SMC-GymConsole/internal/usecase/get_attendance_calendar"
)

const (
	msgInvalidParams    = "некорректные параметры календаря"
	msgEmployeeNotFound = "сотрудник не найден"
)

type Handler struct {
	useCase GetAttendanceCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetAttendanceCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/attendance/calendar
// Query params: year, month (0 = январь), direction, date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]
	if !handlers.ValidID(employeeID) {
		h.logger.Warn("GET /employees/{id}/attendance/calendar - Malformed employee id: employee_id=%q", employeeID)
		handlers.RespondNotFound(w, msgEmployeeNotFound)
		return
	}
	values := r.URL.Query()

	year, err := handlers.OptionalInt(values, "year")
	if err != nil {
		h.logger.Warn("GET /employees/{id}/attendance/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	month, err := handlers.OptionalInt(values, "month")
	if err != nil {
		h.logger.Warn("GET /employees/{id}/attendance/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAttendanceCalendar.Request{
		EmployeeID:   employeeID,
		Year:         year,
		Month:        month,
		Direction:    values.Get("direction"),
		SelectedDate: values.Get("date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAttendanceCalendar.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/attendance/calendar - Invalid parameters: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAttendanceCalendar.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/attendance/calendar - Employee not found: employee_id=%s", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		default:
			h.logger.Error("GET /employees/{id}/attendance/calendar - Failed to build calendar: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/attendance/calendar - Calendar built: employee_id=%s, month=%s, marks=%d",
		employeeID, result.Calendar.Label, result.Stats.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
