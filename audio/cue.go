package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/softsnake/parameter"
)

// ErrInvalidCue is returned for unusable cue settings
var ErrInvalidCue = errors.New("invalid audio cue config")

// CueConfig describes the wave-cycle click
type CueConfig struct {
	Enabled       bool
	SampleRate    int
	ToneFrequency float64 // Hz, below the Nyquist limit
	Duration      time.Duration
	Attack        time.Duration
	Release       time.Duration
	Volume        float64 // 0.0 to 1.0
}

func DefaultCueConfig() CueConfig {
	return CueConfig{
		Enabled:       true,
		SampleRate:    parameter.AudioSampleRate,
		ToneFrequency: parameter.CueToneFrequency,
		Duration:      parameter.CueToneDuration,
		Attack:        parameter.CueAttack,
		Release:       parameter.CueRelease,
		Volume:        parameter.CueVolume,
	}
}

func (c CueConfig) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidCue, c.SampleRate)
	case c.ToneFrequency <= 0 || c.ToneFrequency >= float64(c.SampleRate)/2:
		return fmt.Errorf("%w: tone %v Hz outside (0, %d)", ErrInvalidCue, c.ToneFrequency, c.SampleRate/2)
	case c.Duration <= 0 || c.Attack < 0 || c.Release < 0 || c.Attack+c.Release > c.Duration:
		return fmt.Errorf("%w: envelope %v+%v exceeds duration %v", ErrInvalidCue, c.Attack, c.Release, c.Duration)
	case math.IsNaN(c.Volume) || c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalidCue, c.Volume)
	}
	return nil
}

// Cue watches the body's wave phase and clicks on every completed cycle
// Observe is safe to call from the simulation goroutine while the speaker runs
type Cue struct {
	mu          sync.Mutex
	cfg         CueConfig
	mixer       *beep.Mixer
	initialized bool

	lastCycle int
	primed    bool
	clicks    uint64
}

// NewCue validates cfg; a disabled cue skips validation and never plays
func NewCue(cfg CueConfig) (*Cue, error) {
	if cfg.Enabled {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return &Cue{cfg: cfg, mixer: &beep.Mixer{}}, nil
}

// Init opens the speaker; failure leaves the cue silent but still usable
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}
	rate := beep.SampleRate(c.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Observe reports whether phaseCycles entered a new whole cycle since the last call
// A wrapped phase counts as a new cycle; the first observation only primes the detector
func (c *Cue) Observe(phaseCycles float64) bool {
	if !c.cfg.Enabled {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cycle := int(math.Floor(phaseCycles))
	if !c.primed {
		c.primed = true
		c.lastCycle = cycle
		return false
	}
	if cycle == c.lastCycle {
		return false
	}
	c.lastCycle = cycle
	c.clicks++

	if c.initialized {
		c.play()
	}
	return true
}

// play must be called with c.mu held
func (c *Cue) play() {
	s, err := clickStreamer(c.cfg)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Rearm forgets the last phase, used after the body resets its timer
func (c *Cue) Rearm() {
	c.mu.Lock()
	c.primed = false
	c.mu.Unlock()
}

// Clicks returns the number of cycle crossings observed
func (c *Cue) Clicks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clicks
}

// Close stops playback and releases the speaker
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
