package manage_slot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule"
)

const slotID = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	calls     int
	gotClosed bool
	err       error
}

func (s *stubService) SetSlotClosed(_ context.Context, _ string, closed bool) error {
	s.calls++
	s.gotClosed = closed
	return s.err
}

func (s *stubService) DeleteSlot(context.Context, string) error {
	s.calls++
	return s.err
}

func newRouter(svc SlotService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/slots/{slotId}/closed", h.HandleClose).Methods(http.MethodPatch)
	r.HandleFunc("/slots/{slotId}", h.HandleDelete).Methods(http.MethodDelete)
	return r
}

func TestHandleClose(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		body  string
		err   error
		code  int
		calls int
	}{
		{name: "closed", id: slotID, body: `{"closed":true}`, code: http.StatusNoContent, calls: 1},
		{name: "missing flag", id: slotID, body: `{}`, code: http.StatusBadRequest},
		{name: "invalid body", id: slotID, body: `{"closed":`, code: http.StatusBadRequest},
		{name: "not found", id: slotID, body: `{"closed":false}`, err: schedule.ErrSlotNotFound, code: http.StatusNotFound, calls: 1},
		{name: "internal", id: slotID, body: `{"closed":false}`, err: errors.New("boom"), code: http.StatusInternalServerError, calls: 1},
		{name: "malformed id", id: "slot-1", body: `{"closed":true}`, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/slots/"+tt.id+"/closed", strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.calls, svc.calls)
		})
	}
}

func TestHandleClose_PassesFlag(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/slots/"+slotID+"/closed", strings.NewReader(`{"closed":true}`)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, svc.gotClosed)
}

func TestHandleDelete(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		err   error
		code  int
		calls int
	}{
		{name: "deleted", id: slotID, code: http.StatusNoContent, calls: 1},
		{name: "not found", id: slotID, err: schedule.ErrSlotNotFound, code: http.StatusNotFound, calls: 1},
		{name: "internal", id: slotID, err: errors.New("boom"), code: http.StatusInternalServerError, calls: 1},
		{name: "malformed id", id: "slot-1", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/slots/"+tt.id, nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.calls, svc.calls)
		})
	}
}
