package llm

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// RetryPolicy is a bounded retry with exponential backoff, applied
// around generation calls. It is deliberately separate from the rate
// limiter's token accounting: retries handle transient service
// failures, the limiter handles quota.
type RetryPolicy struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy matches the service client defaults: three
// attempts with 1s initial backoff doubling up to 10s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// backoff returns the wait before the given zero-based retry attempt.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(float64(p.InitialWait) * math.Pow(p.Multiplier, float64(attempt)))
	if wait > p.MaxWait {
		wait = p.MaxWait
	}
	return wait
}

// retry runs fn up to MaxAttempts times, sleeping between attempts.
// Context cancellation stops the loop immediately.
func retry[T any](ctx context.Context, p RetryPolicy, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < attempts-1 {
			wait := p.backoff(attempt)
			slog.Debug("generation attempt failed, retrying",
				slog.Int("attempt", attempt+1),
				slog.Duration("wait", wait),
				slog.Any("error", err))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}

	return zero, lastErr
}
