package get_revenue

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getRevenue "github.com/m04kA/SMC-GymConsole/internal/usecase/get_revenue"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got *getRevenue.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *getRevenue.Request) (*getRevenue.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &getRevenue.Response{}, nil
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "ok", code: http.StatusOK},
		{name: "invalid range", err: getRevenue.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "wrapped invalid range", err: errors.Join(errors.New("ctx"), getRevenue.ErrInvalidInput), code: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubUseCase{err: tt.err}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/analytics/revenue", nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_PassesQuery(t *testing.T) {
	uc := &stubUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet,
		"/analytics/revenue?from=2026-02-01&to=2026-02-28&branchId=north", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-02-01", uc.got.From)
	assert.Equal(t, "2026-02-28", uc.got.To)
	assert.Equal(t, "north", uc.got.BranchID)
}
