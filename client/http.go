package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// doJSON sends a JSON request and decodes the JSON response into result.
// Retryable failures (network errors, 429/5xx) are retried with backoff; the
// final error is a *APIError for API-level failures.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	respBody, err := c.do(ctx, method, path, "application/json", bodyBytes)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// do sends a request with retry and returns the full response body.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) ([]byte, error) {
	requestID := uuid.New().String()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := c.newRequest(ctx, method, path, contentType, body, requestID)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.logRetry(path, attempt, lastErr)
			c.sleepWithJitter(ctx, attempt)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			c.logRetry(path, attempt, lastErr)
			c.sleepWithJitter(ctx, attempt)
			continue
		}

		if shouldRetryStatus(resp.StatusCode) {
			lastErr = newAPIError(resp.StatusCode, respBody, requestID)
			c.logRetry(path, attempt, lastErr)
			c.sleepWithJitter(ctx, attempt)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, newAPIError(resp.StatusCode, respBody, requestID)
		}

		return respBody, nil
	}

	return nil, fmt.Errorf("max retries (%d) exceeded: %w", c.maxRetries, lastErr)
}

// doStream sends a request and returns the response with its body still
// open, for server-sent event consumption. Only pre-body failures are
// retried; once a 2xx response arrives the caller owns the body.
func (c *Client) doStream(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	requestID := uuid.New().String()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := c.newRequest(ctx, method, path, "application/json", body, requestID)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/event-stream")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.logRetry(path, attempt, lastErr)
			c.sleepWithJitter(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()

		if shouldRetryStatus(resp.StatusCode) {
			lastErr = newAPIError(resp.StatusCode, respBody, requestID)
			c.logRetry(path, attempt, lastErr)
			c.sleepWithJitter(ctx, attempt)
			continue
		}
		return nil, newAPIError(resp.StatusCode, respBody, requestID)
	}

	return nil, fmt.Errorf("max retries (%d) exceeded: %w", c.maxRetries, lastErr)
}

func (c *Client) newRequest(ctx context.Context, method, path, contentType string, body []byte, requestID string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("X-Request-ID", requestID)
	return req, nil
}

// shouldRetryStatus returns true for status codes worth retrying.
func shouldRetryStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests:
		return true
	case 520, 521, 522, 523, 524: // Cloudflare errors
		return true
	default:
		return statusCode >= 500
	}
}

// sleepWithJitter sleeps with exponential backoff and jitter, respecting
// context cancellation.
func (c *Client) sleepWithJitter(ctx context.Context, attempt int) {
	baseDelay := c.retryDelay * time.Duration(1<<attempt)
	if baseDelay > 10*time.Second {
		baseDelay = 10 * time.Second
	}

	// Jitter: -20% to +30%
	jitter := time.Duration(float64(baseDelay) * (0.8 + 0.5*float64(time.Now().UnixNano()%1000)/1000))

	select {
	case <-ctx.Done():
	case <-time.After(jitter):
	}
}

func (c *Client) logRetry(path string, attempt int, err error) {
	c.logger.Debug("retrying request",
		"path", path,
		"attempt", attempt+1,
		"max_retries", c.maxRetries,
		"error", err,
	)
}
