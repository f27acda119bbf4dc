// Package engine drives a simulation from wall time: time sources, a pausable frame clock,
// and a fixed-interval sub-stepper
package engine

import "time"

// TimeProvider is the wall time source consumed by FrameClock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, including its monotonic component
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a system clock time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
