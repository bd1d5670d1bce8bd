package core

// limiter.go bounds how many loads run at once.
//
// Each load holds the whole decoded file in memory while it is parsed and
// stored, so parallel loads are limited to a fixed number of slots. When all
// slots are taken a load waits up to maxWait before failing with ErrBusy.
// Drain lets shutdown wait for loads in flight.

import (
	"context"
	"errors"
	"time"
)

// ErrBusy is returned when no load slot frees up in time.
var ErrBusy = errors.New("too many concurrent loads, please try again later")

// DefaultMaxConcurrentLoads is the default number of parallel loads.
const DefaultMaxConcurrentLoads = 4

// DefaultMaxWait is how long a load waits for a slot before giving up.
const DefaultMaxWait = 10 * time.Second

// Limiter is a counting semaphore with a bounded wait.
type Limiter struct {
	slots   chan struct{}
	maxWait time.Duration
}

// NewLimiter allows maxConcurrent holders at a time. Values <= 0 select the
// defaults.
func NewLimiter(maxConcurrent int, maxWait time.Duration) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentLoads
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	return &Limiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot, waiting at most maxWait. The caller must Release it.
// It returns ctx.Err() if ctx ends first, or ErrBusy on timeout.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l.tryAcquire() {
		return nil
	}

	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrBusy
	}
}

// tryAcquire takes a slot only if one is free right now.
func (l *Limiter) tryAcquire() bool {
	select {
	case l.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees a slot taken by Acquire.
func (l *Limiter) Release() {
	<-l.slots
}

// LimiterStatus is a snapshot of a Limiter.
type LimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status reports how many slots are in use.
func (l *Limiter) Status() LimiterStatus {
	active := len(l.slots)
	return LimiterStatus{
		Active:        active,
		Available:     cap(l.slots) - active,
		MaxConcurrent: cap(l.slots),
	}
}

// Drain blocks until no slot is held or ctx ends.
func (l *Limiter) Drain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for len(l.slots) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
