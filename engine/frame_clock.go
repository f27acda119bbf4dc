package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/softsnake/parameter"
)

// FrameClock turns wall time into per-frame simulation deltas
// Paused frames yield zero; a single frame never yields more than the configured cap,
// so a stalled driver does not hand the sub-stepper a runaway interval
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	last     time.Time // wall time of the previous Tick or Resume
	maxDelta float64   // seconds
	elapsed  float64   // simulation seconds delivered

	isPaused atomic.Bool
}

// NewFrameClock creates a running clock; a nil provider uses the system clock
func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: parameter.MaxFrameDeltaFloat,
	}
}

// SetMaxDelta changes the per-frame cap; non-positive values are ignored
func (c *FrameClock) SetMaxDelta(seconds float64) {
	if seconds <= 0 {
		return
	}
	c.mu.Lock()
	c.maxDelta = seconds
	c.mu.Unlock()
}

// Tick returns the simulation seconds since the previous Tick
func (c *FrameClock) Tick() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if c.isPaused.Load() || dt <= 0 {
		return 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	return dt
}

// Pause freezes simulation time
func (c *FrameClock) Pause() {
	c.isPaused.Store(true)
}

// Resume restarts simulation time from now; the paused interval is never delivered
func (c *FrameClock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.mu.Lock()
		c.last = c.provider.Now()
		c.mu.Unlock()
	}
}

// TogglePause flips the pause state and returns the new state
func (c *FrameClock) TogglePause() bool {
	if c.isPaused.Load() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *FrameClock) IsPaused() bool {
	return c.isPaused.Load()
}

// Elapsed returns the total simulation seconds delivered by Tick
func (c *FrameClock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
