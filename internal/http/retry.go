package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ocr-translator/internal/config"
)

// RetryPolicy configures retry behavior for HTTP requests.
type RetryPolicy struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	BackoffFactor   float64
	RetryableStatus []int // HTTP status codes that should trigger a retry
}

// DefaultRetryPolicy returns a single-attempt policy. Callers opt into
// retries by raising MaxAttempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   config.DefaultMaxAttempts,
		InitialDelay:  config.DefaultRetryDelay,
		BackoffFactor: config.DefaultBackoffFactor,
		RetryableStatus: []int{
			http.StatusTooManyRequests,     // 429
			http.StatusBadGateway,          // 502
			http.StatusServiceUnavailable,  // 503
			http.StatusGatewayTimeout,      // 504
		},
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) next(delay time.Duration) time.Duration {
	if p.BackoffFactor <= 1 {
		return delay
	}
	return time.Duration(float64(delay) * p.BackoffFactor)
}

func (p RetryPolicy) isRetryableStatus(status int) bool {
	for _, s := range p.RetryableStatus {
		if s == status {
			return true
		}
	}
	return false
}

// RequestFunc builds a fresh request for every attempt so bodies never
// have to be rewound.
type RequestFunc func(ctx context.Context) (*http.Request, error)

// Do executes a request with exponential backoff retry. The response of the
// final attempt is returned as-is, whatever its status.
func Do(ctx context.Context, client *http.Client, newRequest RequestFunc, policy RetryPolicy) (*http.Response, error) {
	var lastErr error
	delay := policy.InitialDelay
	maxAttempts := policy.attempts()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := newRequest(ctx)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := client.Do(req)
		if err == nil {
			if attempt == maxAttempts || !policy.isRetryableStatus(resp.StatusCode) {
				return resp, nil
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		if attempt < maxAttempts {
			if err := wait(ctx, delay); err != nil {
				return nil, err
			}
			delay = policy.next(delay)
		}
	}

	if maxAttempts == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
