package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_Send(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/broadcasts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"delivery_id":"d-1","recipients":42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})
	delivery, err := client.Send(context.Background(), Message{
		BroadcastID: "bc-1", Title: "Closed", Message: "Gym closed on Monday", Audience: "active", Channel: "sms",
	})
	require.NoError(t, err)

	assert.Equal(t, "d-1", delivery.DeliveryID)
	assert.Equal(t, 42, delivery.Recipients)
	assert.Equal(t, "bc-1", got.BroadcastID)
	assert.Equal(t, "sms", got.Channel)
}

func TestClient_SendErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "rejected", status: http.StatusBadRequest, body: `{"code":400,"message":"unknown channel"}`, wantErr: ErrRejected},
		{name: "gateway down", status: http.StatusServiceUnavailable, body: "maintenance", wantErr: ErrUnavailable},
		{name: "broken body", status: http.StatusOK, body: "{", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second, nopLogger{}).Send(context.Background(), Message{BroadcastID: "bc-1"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_SendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 200*time.Millisecond, nopLogger{}).Send(context.Background(), Message{BroadcastID: "bc-1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
