package resources

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/export"
	"github.com/m04kA/SMC-GymConsole/internal/service/resources"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректные параметры запроса"
	msgNotFound           = "запись не найдена"
	msgDuplicate          = "запись с такими данными уже существует"
	msgUnknownFilter      = "фильтр по этому полю не поддерживается"
	msgUnsupportedFormat  = "поддерживаются форматы csv и xlsx"
)

// Handler HTTP обработчики таблицы: список, карточка, создание,
// изменение, удаление и выгрузка
type Handler[T any] struct {
	service ResourceService[T]
	logger  Logger
	now     func() time.Time
}

func NewHandler[T any](service ResourceService[T], logger Logger) *Handler[T] {
	return &Handler[T]{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Register монтирует маршруты таблицы в /{name}
func (h *Handler[T]) Register(r *mux.Router) {
	base := "/" + h.service.Name()

	r.HandleFunc(base+"/list", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc(base+"/export", h.HandleExport).Methods(http.MethodGet)
	r.HandleFunc(base+"/create", h.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc(base+"/{id}", h.HandleGet).Methods(http.MethodGet)
	r.HandleFunc(base+"/{id}", h.HandleUpdate).Methods(http.MethodPut)
	r.HandleFunc(base+"/{id}", h.HandleDelete).Methods(http.MethodDelete)
}

// HandleList GET /api/v1/{resource}/list
// Query params: currentPageIndex, dataPerPage, search, filters[field]
func (h *Handler[T]) HandleList(w http.ResponseWriter, r *http.Request) {
	name := h.service.Name()

	q, err := handlers.ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /%s/list - Invalid query: %v", name, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), resources.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Filters: q.Filters,
	})
	if err != nil {
		h.respondError(w, "GET", "/list", "", err)
		return
	}

	h.logger.Info("GET /%s/list - Page retrieved: page=%d, count=%d, total=%d",
		name, result.CurrentPaginationIndex, len(result.Data), result.DataCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/{resource}/{id}
func (h *Handler[T]) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !handlers.ValidID(id) {
		h.respondError(w, "GET", "/{id}", id, resources.ErrNotFound)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET", "/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

// HandleCreate POST /api/v1/{resource}/create
func (h *Handler[T]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	name := h.service.Name()

	item := new(T)
	if err := handlers.DecodeJSON(r, item); err != nil {
		h.logger.Warn("POST /%s/create - Invalid request body: %v", name, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), item)
	if err != nil {
		h.respondError(w, "POST", "/create", "", err)
		return
	}

	h.logger.Info("POST /%s/create - Record created successfully", name)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdate PUT /api/v1/{resource}/{id}
func (h *Handler[T]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	name := h.service.Name()
	id := mux.Vars(r)["id"]
	if !handlers.ValidID(id) {
		h.respondError(w, "PUT", "/{id}", id, resources.ErrNotFound)
		return
	}

	item := new(T)
	if err := handlers.DecodeJSON(r, item); err != nil {
		h.logger.Warn("PUT /%s/{id} - Invalid request body: id=%s, error=%v", name, id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, item)
	if err != nil {
		h.respondError(w, "PUT", "/{id}", id, err)
		return
	}

	h.logger.Info("PUT /%s/{id} - Record updated successfully: id=%s", name, id)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// HandleDelete DELETE /api/v1/{resource}/{id}
func (h *Handler[T]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := h.service.Name()
	id := mux.Vars(r)["id"]
	if !handlers.ValidID(id) {
		h.respondError(w, "DELETE", "/{id}", id, resources.ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE", "/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /%s/{id} - Record deleted successfully: id=%s", name, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleExport GET /api/v1/{resource}/export
// Query params: format (csv|xlsx), search, filters[field]. Файл собирается
// целиком до отправки, чтобы ошибка чтения вернулась обычным JSON ответом
func (h *Handler[T]) HandleExport(w http.ResponseWriter, r *http.Request) {
	name := h.service.Name()
	values := r.URL.Query()

	f, err := export.ParseFormat(values.Get("format"))
	if err != nil {
		h.respondError(w, "GET", "/export", "", err)
		return
	}

	q, err := handlers.ParseListQuery(values)
	if err != nil {
		h.logger.Warn("GET /%s/export - Invalid query: %v", name, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	var buf bytes.Buffer
	err = h.service.Export(r.Context(), resources.ExportRequest{
		Format:  string(f),
		Search:  q.Search,
		Filters: q.Filters,
	}, &buf)
	if err != nil {
		h.respondError(w, "GET", "/export", "", err)
		return
	}

	fileName := export.FileName(name, f, h.now())
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /%s/export - Failed to write file: %v", name, err)
		return
	}

	h.logger.Info("GET /%s/export - Export sent: file=%s", name, fileName)
}

func (h *Handler[T]) respondError(w http.ResponseWriter, method, route, id string, err error) {
	name := h.service.Name()

	switch {
	case errors.Is(err, validation.ErrInvalidInput):
		h.logger.Warn("%s /%s%s - Validation failed: id=%s, error=%v", method, name, route, id, err)
		handlers.RespondValidationError(w, err)

	case errors.Is(err, resources.ErrNotFound):
		h.logger.Warn("%s /%s%s - Record not found: id=%s", method, name, route, id)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, resources.ErrDuplicate):
		h.logger.Warn("%s /%s%s - Duplicate record: id=%s", method, name, route, id)
		handlers.RespondConflict(w, msgDuplicate)

	case errors.Is(err, resources.ErrUnknownFilter):
		h.logger.Warn("%s /%s%s - Unknown filter: %v", method, name, route, err)
		handlers.RespondBadRequest(w, msgUnknownFilter)

	case errors.Is(err, export.ErrUnsupportedFormat):
		h.logger.Warn("%s /%s%s - Unsupported format: %v", method, name, route, err)
		handlers.RespondBadRequest(w, msgUnsupportedFormat)

	default:
		h.logger.Error("%s /%s%s - Internal error: id=%s, error=%v", method, name, route, id, err)
		handlers.RespondInternalError(w)
	}
}
