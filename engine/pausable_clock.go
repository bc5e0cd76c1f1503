package engine

import (
	"sync"
	"time"
)

// PausableClock measures run time with paused intervals excluded
type PausableClock struct {
	mu       sync.RWMutex
	provider TimeProvider

	start       time.Time
	pausedAt    time.Time // zero while running
	pausedTotal time.Duration
}

// NewPausableClock starts a running clock on provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns run time excluding pauses; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.provider.Now()
	if !pc.pausedAt.IsZero() {
		now = pc.pausedAt
	}
	return now.Sub(pc.start) - pc.pausedTotal
}

// Pause freezes Elapsed; no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.pausedAt.IsZero() {
		pc.pausedAt = pc.provider.Now()
	}
}

// Resume continues Elapsed from where it was frozen; no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.pausedAt.IsZero() {
		return
	}
	pc.pausedTotal += pc.provider.Now().Sub(pc.pausedAt)
	pc.pausedAt = time.Time{}
}

// IsPaused reports whether the clock is frozen
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return !pc.pausedAt.IsZero()
}

// TotalPauseDuration returns the cumulative paused time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedTotal
	if !pc.pausedAt.IsZero() {
		total += pc.provider.Now().Sub(pc.pausedAt)
	}
	return total
}
