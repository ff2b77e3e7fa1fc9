package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Wait(ctx context.Context) error
}

// TokenBucket paces outgoing calls with a single token bucket
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket creates a new rate limiter
// Example: NewTokenBucket(3, time.Second, 1) -> at most 3 calls per second, no bursts
func NewTokenBucket(requests int, per time.Duration, burst int) *TokenBucket {
	if requests <= 0 {
		return &TokenBucket{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		limiter: rate.NewLimiter(rate.Every(per/time.Duration(requests)), burst),
	}
}

// Wait blocks until the next call is allowed or ctx is done
func (l *TokenBucket) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

var _ Limiter = (*TokenBucket)(nil)
