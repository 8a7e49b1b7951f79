package attendance

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgAlreadyMarked      = "посещаемость на эту дату уже отмечена"
	msgMarkNotFound       = "отметка посещаемости не найдена"
)

type Handler struct {
	service AttendanceService
	logger  Logger
}

func NewHandler(service AttendanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleMark POST /api/v1/employees/{employeeId}/attendance
func (h *Handler) HandleMark(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]
	if !handlers.ValidID(employeeID) {
		h.logger.Warn("POST /employees/{id}/attendance - Malformed employee id: employee_id=%q", employeeID)
		handlers.RespondNotFound(w, msgEmployeeNotFound)
		return
	}

	var form calendar.AttendanceForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /employees/{id}/attendance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	mark, err := h.service.MarkAttendance(r.Context(), employeeID, form)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidInput):
			h.logger.Warn("POST /employees/{id}/attendance - Validation failed: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, schedule.ErrEmployeeNotFound):
			h.logger.Warn("POST /employees/{id}/attendance - Employee not found: employee_id=%s", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, schedule.ErrAlreadyMarked):
			h.logger.Warn("POST /employees/{id}/attendance - Already marked: employee_id=%s, date=%s", employeeID, form.Date)
			handlers.RespondConflict(w, msgAlreadyMarked)

		default:
			h.logger.Error("POST /employees/{id}/attendance - Failed to mark attendance: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees/{id}/attendance - Attendance marked: employee_id=%s, date=%s, status=%s",
		employeeID, mark.Date, mark.Status)
	handlers.RespondJSON(w, http.StatusCreated, mark)
}

// HandleDelete DELETE /api/v1/attendance/{markId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	markID := mux.Vars(r)["markId"]
	if !handlers.ValidID(markID) {
		h.logger.Warn("DELETE /attendance/{id} - Malformed mark id: mark_id=%q", markID)
		handlers.RespondNotFound(w, msgMarkNotFound)
		return
	}

	if err := h.service.DeleteAttendance(r.Context(), markID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrMarkNotFound):
			h.logger.Warn("DELETE /attendance/{id} - Mark not found: mark_id=%s", markID)
			handlers.RespondNotFound(w, msgMarkNotFound)

		default:
			h.logger.Error("DELETE /attendance/{id} - Failed to delete mark: mark_id=%s, error=%v", markID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /attendance/{id} - Mark deleted: mark_id=%s", markID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
