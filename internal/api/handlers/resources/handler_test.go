package resources

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/export"
	"github.com/m04kA/SMC-GymConsole/internal/listing"
	"github.com/m04kA/SMC-GymConsole/internal/service/resources"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err     error
	lastReq resources.ListRequest
	lastExp resources.ExportRequest
}

func (f *fakeService) Name() string { return "members" }

func (f *fakeService) List(_ context.Context, req resources.ListRequest) (*listing.Envelope[domain.Member], error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	env := listing.NewEnvelope(listing.Page[domain.Member]{
		Items:    []domain.Member{{Name: "Anna"}},
		Total:    1,
		Page:     req.Page,
		PageSize: 10,
	}, nil)
	return &env, nil
}

func (f *fakeService) Get(_ context.Context, id string) (*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Member{Record: domain.Record{ID: id}, Name: "Anna"}, nil
}

func (f *fakeService) Create(_ context.Context, item *domain.Member) (*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = "new-id"
	return item, nil
}

func (f *fakeService) Update(_ context.Context, id string, item *domain.Member) (*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = id
	return item, nil
}

func (f *fakeService) Delete(context.Context, string) error { return f.err }

func (f *fakeService) Export(_ context.Context, req resources.ExportRequest, w io.Writer) error {
	f.lastExp = req
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "Name\nAnna\n")
	return err
}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler[domain.Member](svc, nopLogger{})
	h.now = func() time.Time { return time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC) }

	r := mux.NewRouter()
	h.Register(r)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestHandleList(t *testing.T) {
	svc := &fakeService{}
	rec := serve(newRouter(svc), http.MethodGet, "/members/list?currentPageIndex=2&search=ann&filters%5Bstatus%5D=active", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.lastReq.Page)
	assert.Equal(t, "ann", svc.lastReq.Search)
	assert.Equal(t, map[string]string{"status": "active"}, svc.lastReq.Filters)

	var body listing.Envelope[domain.Member]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.DataCount)
	assert.Equal(t, "Anna", body.Data[0].Name)
}

func TestHandleList_InvalidPage(t *testing.T) {
	rec := serve(newRouter(&fakeService{}), http.MethodGet, "/members/list?currentPageIndex=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreate(t *testing.T) {
	rec := serve(newRouter(&fakeService{}), http.MethodPost, "/members/create", `{"name":"Anna","phone":"1","status":"active","joinDate":"2026-02-12"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Member
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "new-id", created.ID)
}

func TestHandleCreate_UnknownField(t *testing.T) {
	rec := serve(newRouter(&fakeService{}), http.MethodPost, "/members/create", `{"nickname":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		err    error
		code   int
	}{
		{name: "get not found", method: http.MethodGet, target: "/members/9d2c8e41-7a3b-4f6e-8d1c-5b4a3e2f1d0c", err: resources.ErrNotFound, code: http.StatusNotFound},
		{name: "update validation", method: http.MethodPut, target: "/members/9d2c8e41-7a3b-4f6e-8d1c-5b4a3e2f1d0c", body: `{}`, err: validation.FieldErrors{{Field: "name", Message: "required"}}, code: http.StatusUnprocessableEntity},
		{name: "create duplicate", method: http.MethodPost, target: "/members/create", body: `{}`, err: resources.ErrDuplicate, code: http.StatusConflict},
		{name: "list unknown filter", method: http.MethodGet, target: "/members/list?filters%5Bcolor%5D=red", err: resources.ErrUnknownFilter, code: http.StatusBadRequest},
		{name: "delete internal", method: http.MethodDelete, target: "/members/9d2c8e41-7a3b-4f6e-8d1c-5b4a3e2f1d0c", err: errors.New("boom"), code: http.StatusInternalServerError},
		{name: "delete ok", method: http.MethodDelete, target: "/members/9d2c8e41-7a3b-4f6e-8d1c-5b4a3e2f1d0c", code: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(&fakeService{err: tt.err}), tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandleExport(t *testing.T) {
	svc := &fakeService{}
	rec := serve(newRouter(svc), http.MethodGet, "/members/export?format=csv&search=ann", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.FormatCSV.ContentType(), rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="members-2026-02-12.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Name\nAnna\n", rec.Body.String())
	assert.Equal(t, "ann", svc.lastExp.Search)
}

func TestHandleExport_UnsupportedFormat(t *testing.T) {
	rec := serve(newRouter(&fakeService{}), http.MethodGet, "/members/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
