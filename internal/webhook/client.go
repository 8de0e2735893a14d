package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oggyb/chat-archive/internal/request"
)

var _ Notifier = (*Client)(nil)

// Client posts erasure notices to a webhook-style HTTP endpoint.
type Client struct {
	endpoint   string
	authKey    string
	httpClient *http.Client
}

// NewClient creates a new webhook client with the given endpoint and auth key.
func NewClient(endpoint, authKey string) *Client {
	return &Client{
		endpoint: endpoint,
		authKey:  authKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// NotifyErasure implements Notifier by posting a JSON payload to the
// configured endpoint.
func (c *Client) NotifyErasure(ctx context.Context, userID string, deleted int64) error {
	// Keep individual requests bounded in time.
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	payload := request.ErasureNoticeRequest{
		UserID:  userID,
		Deleted: deleted,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal erasure notice: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authKey != "" {
		req.Header.Set("x-archive-auth-key", c.authKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("erasure notice timeout or canceled: %w", err)
		}
		return fmt.Errorf("erasure notice request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erasure notice returned non-2xx status %d: %s", resp.StatusCode, raw)
	}

	return nil
}

// Health implements Notifier.Health with a simple GET request to the endpoint.
func (c *Client) Health(ctx context.Context) error {
	// Lightweight ping with a short timeout.
	ctx, cancel := withTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("health: failed to create request: %w", err)
	}

	if c.authKey != "" {
		req.Header.Set("x-archive-auth-key", c.authKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("health: request timeout or canceled: %w", err)
		}
		return fmt.Errorf("health: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("health: non-2xx status: %d", resp.StatusCode)
	}

	return nil
}
