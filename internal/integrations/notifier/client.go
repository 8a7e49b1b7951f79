package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент шлюза рассылок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза рассылок
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send передает рассылку шлюзу
func (c *Client) Send(ctx context.Context, msg Message) (*Delivery, error) {
	url := fmt.Sprintf("%s/internal/broadcasts", c.baseURL)
	c.log.Info("Sending broadcast id=%s, channel=%s, audience=%s", msg.BroadcastID, msg.Channel, msg.Audience)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Notifier unavailable for broadcast id=%s: %v", msg.BroadcastID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.log.Warn("Notifier rejected broadcast id=%s: status=%d, message=%s", msg.BroadcastID, resp.StatusCode, errResp.Message)
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Message)
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error("Notifier failed broadcast id=%s: status=%d", msg.BroadcastID, resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	}

	var delivery Delivery
	if err := json.NewDecoder(resp.Body).Decode(&delivery); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Broadcast id=%s accepted: delivery=%s, recipients=%d", msg.BroadcastID, delivery.DeliveryID, delivery.Recipients)
	return &delivery, nil
}
