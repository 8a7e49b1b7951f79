package create_slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
	createSlot "github.com/m04kA/SMC-GymConsole/internal/usecase/create_slot"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got *createSlot.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createSlot.Request) (*models.SlotResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.SlotResponse{ID: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", Date: req.Form.Date, Time: req.Form.Time, Title: req.Form.Title}, nil
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}
	rec := httptest.NewRecorder()
	body := `{"date":"2026-02-12","time":"18:00","title":"Yoga"}`
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/slots", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Yoga", uc.got.Form.Title)

	var resp models.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "18:00", resp.Time)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{name: "invalid body", body: `{"date":`, code: http.StatusBadRequest},
		{name: "validation", body: `{}`, err: validation.FieldErrors{{Field: "time", Message: "обязательное поле"}}, code: http.StatusUnprocessableEntity},
		{name: "wrapped validation", body: `{}`, err: fmt.Errorf("%w: capacity", validation.ErrInvalidInput), code: http.StatusUnprocessableEntity},
		{name: "internal", body: `{}`, err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubUseCase{err: tt.err}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/slots", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
