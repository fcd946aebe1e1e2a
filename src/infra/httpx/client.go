// Package httpx provides the paced HTTP client both source adapters
// fetch through: one timeout policy and a minimum inter-request delay
// per source, so a run never hammers an external service.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Client wraps an http.Client with request pacing.
type Client struct {
	httpClient *http.Client
	pacing     time.Duration

	mu   sync.Mutex
	last time.Time
}

// New creates a paced client. A zero pacing disables the delay.
func New(timeout, pacing time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		pacing:     pacing,
	}
}

// Do performs the request after honoring the pacing delay. The delay is
// measured from the previous request's start, whichever goroutine made it.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.pace(req.Context()); err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// GetBody fetches a URL and returns its body. Any non-2xx status is an
// error; the caller decides whether that is fatal.
func (c *Client) GetBody(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

func (c *Client) pace(ctx context.Context) error {
	if c.pacing <= 0 {
		return nil
	}

	c.mu.Lock()
	now := time.Now()
	wait := c.pacing - now.Sub(c.last)
	if wait < 0 {
		wait = 0
	}
	c.last = now.Add(wait)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
