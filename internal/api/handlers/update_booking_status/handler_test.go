package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	gotID string
	err   error
}

func (s *stubService) UpdateBookingStatus(_ context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/bookings/6f1c1b8e-6a55-4a3e-9a0e-2f8a5d7c1b01/status", strings.NewReader(body)))
	return rec
}

func TestHandle_UpdatesStatus(t *testing.T) {
	svc := &stubService{}
	rec := serve(NewHandler(svc, nopLogger{}), `{"status":"cancelled"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "6f1c1b8e-6a55-4a3e-9a0e-2f8a5d7c1b01", svc.gotID)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		schedule.ErrBookingNotFound:   http.StatusNotFound,
		schedule.ErrInvalidStatus:     http.StatusBadRequest,
		schedule.ErrInvalidTransition: http.StatusConflict,
		schedule.ErrStatusChanged:     http.StatusConflict,
		schedule.ErrInternal:          http.StatusInternalServerError,
	}
	for err, code := range cases {
		rec := serve(NewHandler(&stubService{err: err}, nopLogger{}), `{"status":"completed"}`)
		assert.Equal(t, code, rec.Code, err.Error())
	}
}

func TestHandle_MalformedID(t *testing.T) {
	svc := &stubService{}
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/bookings/b-7/status", strings.NewReader(`{"status":"cancelled"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, svc.gotID)
}
