package engine

import "time"

// TimeProvider is the wall-clock source for PausableClock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock (with monotonic reading)
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a system clock provider
func NewMonotonicTimeProvider() MonotonicTimeProvider {
	return MonotonicTimeProvider{}
}

// Now returns time.Now()
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
