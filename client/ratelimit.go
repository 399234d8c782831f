package client

import (
	"context"
	"sync"
	"time"
)

// RateLimiter implements a token bucket over a one-minute window. Each
// Client owns one and waits on it before every request.
type RateLimiter struct {
	mu sync.Mutex

	requestsPerMinute int
	windowSeconds     float64

	tokens     float64
	lastUpdate time.Time

	totalConsumed int64
	totalWaited   time.Duration
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRateLimit
	}
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		windowSeconds:     60.0,
		tokens:            float64(requestsPerMinute),
		lastUpdate:        time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		r.refill()

		if r.tokens >= 1.0 {
			r.tokens--
			r.totalConsumed++
			r.mu.Unlock()
			return nil
		}

		// Time until the next token accrues.
		deficit := 1.0 - r.tokens
		wait := time.Duration(deficit / r.refillRate() * float64(time.Second))
		r.totalWaited += wait
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Available returns the current token count, after refill.
func (r *RateLimiter) Available() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return int(r.tokens)
}

// refill accrues tokens based on elapsed time. Caller must hold mu.
func (r *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(r.lastUpdate).Seconds()
	r.lastUpdate = now

	r.tokens += elapsed * r.refillRate()
	if max := float64(r.requestsPerMinute); r.tokens > max {
		r.tokens = max
	}
}

// refillRate returns tokens accrued per second.
func (r *RateLimiter) refillRate() float64 {
	return float64(r.requestsPerMinute) / r.windowSeconds
}
