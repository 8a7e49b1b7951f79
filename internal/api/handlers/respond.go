package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgInvalidInput  = "некорректные данные"

	// maxBodyBytes ограничение размера JSON тела запроса
	maxBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// RespondJSON пишет v как JSON с кодом status. nil даёт пустое тело
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError пишет {"error": msg}
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusConflict, msg)
}

// RespondBadGateway 502
func RespondBadGateway(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadGateway, msg)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationError 422 с ошибками полей формы.
// Ошибки без списка полей отдаются одним сообщением
func RespondValidationError(w http.ResponseWriter, err error) {
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  fields.Error(),
			Fields: fields,
		})
		return
	}
	RespondError(w, http.StatusUnprocessableEntity, msgInvalidInput)
}

// DecodeJSON читает тело запроса в v. Неизвестные поля не допускаются
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
