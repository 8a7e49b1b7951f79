package get_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/listing"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	got *models.ListBookingsRequest
	err error
}

func (s *stubService) ListBookings(_ context.Context, req *models.ListBookingsRequest) (*listing.Envelope[models.BookingResponse], error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &listing.Envelope[models.BookingResponse]{Data: []models.BookingResponse{}, CurrentPaginationIndex: req.Page}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		code   int
		called bool
	}{
		{name: "ok", target: "/bookings/list?from=2026-02-01&to=2026-02-28", code: http.StatusOK, called: true},
		{name: "bad page", target: "/bookings/list?currentPageIndex=zero", code: http.StatusBadRequest},
		{name: "bad per page", target: "/bookings/list?dataPerPage=-1", code: http.StatusBadRequest},
		{name: "invalid range", target: "/bookings/list?from=2026-03-01&to=2026-02-01", err: schedule.ErrInvalidInput, code: http.StatusBadRequest, called: true},
		{name: "internal", target: "/bookings/list", err: errors.New("boom"), code: http.StatusInternalServerError, called: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.called, svc.got != nil)
		})
	}
}

func TestHandle_StatusFilter(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet,
		"/bookings/list?filters[status]=confirmed&currentPageIndex=2&dataPerPage=10&search=anna", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", svc.got.Status)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 10, svc.got.PerPage)
	assert.Equal(t, "anna", svc.got.Search)
}
