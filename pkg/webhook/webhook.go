// Package webhook posts run reports to HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/output"
)

// Defaults for SendOptions.
const (
	DefaultTimeout         = 10 * time.Second
	DefaultInitialInterval = 500 * time.Millisecond
)

// maxResponseSize caps how much of a response body is kept.
const maxResponseSize = 1024 * 1024

// Client sends run reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new webhook client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// SendOptions configures a webhook request.
type SendOptions struct {
	URL     string
	Token   string        // Bearer token (optional)
	Timeout time.Duration // Per-attempt timeout (uses DefaultTimeout if zero)

	// Retries is the number of extra attempts after a retryable failure:
	// a transport error or a 5xx status.
	Retries int

	// InitialInterval is the first retry delay (uses DefaultInitialInterval if zero).
	InitialInterval time.Duration
}

// Response contains the result of a webhook delivery.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	Attempts   int
	Error      error
}

// Success returns true if the webhook was sent successfully (2xx status).
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts a report to a webhook endpoint, retrying with exponential
// backoff as configured in opts.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()

	payload, err := json.Marshal(report)
	if err != nil {
		return &Response{Error: errors.Wrap(err, "failed to marshal report"), Duration: time.Since(start)}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = opts.InitialInterval
	if b.InitialInterval == 0 {
		b.InitialInterval = DefaultInitialInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(opts.Retries, 0))), ctx)

	attempts := 0
	resp, err := backoff.RetryNotifyWithData(func() (*Response, error) {
		attempts++
		return c.attempt(ctx, payload, opts)
	}, policy, func(err error, d time.Duration) {
		logger.Warn("webhook delivery failed, retrying", "url", opts.URL, "error", err, "retry_in", d)
	})

	if resp == nil {
		resp = &Response{}
	}
	resp.Error = err
	resp.Attempts = attempts
	resp.Duration = time.Since(start)
	return resp
}

// attempt performs a single POST. Client errors (4xx) and malformed requests
// are permanent; transport errors and 5xx responses may be retried.
func (c *Client) attempt(ctx context.Context, payload []byte, opts SendOptions) (*Response, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "failed to create request"))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "aoc-webhook")
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Body: string(body)}

	switch {
	case resp.StatusCode >= 500:
		return resp, errors.Errorf("webhook returned status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return resp, backoff.Permanent(errors.Errorf("webhook returned status %d", resp.StatusCode))
	}
	return resp, nil
}
