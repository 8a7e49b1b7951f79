package get_calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
	getCalendar "github.com/m04kA/SMC-GymConsole/internal/usecase/get_calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got *getCalendar.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *getCalendar.Request) (*models.MonthViewResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.MonthViewResponse{Year: 2026, Month: 1, Label: "February 2026"}, nil
}

func TestHandle_PassesQuery(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, getCalendar.ViewBookings, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/bookings?year=2026&month=1&direction=next&date=2026-03-02", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, getCalendar.ViewBookings, uc.got.View)
	assert.Equal(t, 2026, *uc.got.Year)
	assert.Equal(t, 1, *uc.got.Month)
	assert.Equal(t, "next", uc.got.Direction)
	assert.Equal(t, "2026-03-02", uc.got.SelectedDate)
	assert.Nil(t, uc.got.BranchID)
	assert.Contains(t, rec.Body.String(), `"label":"February 2026"`)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&stubUseCase{}, getCalendar.ViewSlots, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/slots?year=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&stubUseCase{err: getCalendar.ErrInvalidInput}, getCalendar.ViewSlots, nopLogger{})
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/slots?direction=up", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&stubUseCase{err: errors.New("db down")}, getCalendar.ViewSlots, nopLogger{})
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/slots", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
