// Package ratelimit bounds the outbound call rate to the generation
// service using token buckets over two windows: per-minute and per-day.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Free-tier defaults for the generation service.
const (
	DefaultCallsPerMinute = 5
	DefaultCallsPerDay    = 1500
)

// Limiter is a dual-window token bucket. Acquire never blocks; it
// returns the time the caller should wait before retrying. Token
// accounting is mutex-serialized so one Limiter can be shared across
// concurrent requests.
type Limiter struct {
	mu sync.Mutex

	callsPerMinute int
	callsPerDay    int

	minuteTokens     int
	dayTokens        int
	lastMinuteRefill time.Time
	lastDayRefill    time.Time

	// minInterval is the refill cadence of the minute bucket.
	minInterval time.Duration

	now func() time.Time
}

// New creates a limiter with both buckets full. Non-positive limits
// fall back to the defaults.
func New(callsPerMinute, callsPerDay int) *Limiter {
	if callsPerMinute <= 0 {
		callsPerMinute = DefaultCallsPerMinute
	}
	if callsPerDay <= 0 {
		callsPerDay = DefaultCallsPerDay
	}
	started := time.Now()
	return &Limiter{
		callsPerMinute:   callsPerMinute,
		callsPerDay:      callsPerDay,
		minuteTokens:     callsPerMinute,
		dayTokens:        callsPerDay,
		lastMinuteRefill: started,
		lastDayRefill:    started,
		minInterval:      time.Minute / time.Duration(callsPerMinute),
		now:              time.Now,
	}
}

// Acquire consumes one token from each window if both have capacity
// and returns 0. Otherwise it consumes nothing and returns how long
// the caller should wait for the more constrained window.
func (l *Limiter) Acquire() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.refill(now)

	if l.minuteTokens <= 0 {
		wait := l.minInterval - now.Sub(l.lastMinuteRefill)%l.minInterval
		slog.Debug("rate limit reached", slog.String("window", "minute"), slog.Duration("wait", wait))
		return wait
	}
	if l.dayTokens <= 0 {
		wait := 24*time.Hour - now.Sub(l.lastDayRefill)
		slog.Debug("rate limit reached", slog.String("window", "day"), slog.Duration("wait", wait))
		return wait
	}

	l.minuteTokens--
	l.dayTokens--
	return 0
}

// refill adds tokens linearly in proportion to elapsed time. The
// minute bucket refills one token per minInterval; a full window
// restores full capacity.
func (l *Limiter) refill(now time.Time) {
	elapsed := now.Sub(l.lastMinuteRefill)
	switch {
	case elapsed >= time.Minute:
		l.minuteTokens = l.callsPerMinute
		l.lastMinuteRefill = now
	case elapsed >= l.minInterval:
		add := int(elapsed / l.minInterval)
		l.minuteTokens += add
		if l.minuteTokens > l.callsPerMinute {
			l.minuteTokens = l.callsPerMinute
		}
		l.lastMinuteRefill = l.lastMinuteRefill.Add(time.Duration(add) * l.minInterval)
	}

	if now.Sub(l.lastDayRefill) >= 24*time.Hour {
		l.dayTokens = l.callsPerDay
		l.lastDayRefill = now
	}
}

// Wait acquires a token, sleeping for the returned deficit until one
// becomes available or the context is cancelled. This is the only
// blocking point in the pipeline.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		wait := l.Acquire()
		if wait <= 0 {
			return nil
		}
		slog.Info("rate limited, sleeping", slog.Duration("wait", wait))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
