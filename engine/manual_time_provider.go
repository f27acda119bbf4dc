package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/softsnake/parameter"
)

// ManualTimeProvider is a time source that moves only when told to
// Headless runs advance it one frame per loop so FrameClock sees exact frame intervals
type ManualTimeProvider struct {
	mu     sync.Mutex
	now    time.Time
	frame  time.Duration
	frames uint64
}

// NewManualTimeProvider starts at start; non-positive frame intervals fall back to FrameUpdateInterval
func NewManualTimeProvider(start time.Time, frame time.Duration) *ManualTimeProvider {
	if frame <= 0 {
		frame = parameter.FrameUpdateInterval
	}
	return &ManualTimeProvider{now: start, frame: frame}
}

func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// NextFrame moves time forward by one frame interval and returns the new time
func (p *ManualTimeProvider) NextFrame() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(p.frame)
	p.frames++
	return p.now
}

// Jump shifts time by d without counting a frame
// Negative d models a wall clock stepping back, long d models a stalled driver
func (p *ManualTimeProvider) Jump(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

func (p *ManualTimeProvider) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

func (p *ManualTimeProvider) FrameInterval() time.Duration { return p.frame }
