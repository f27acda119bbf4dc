// Package audio plays a short click each time the snake's contraction wave completes a cycle
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// envelope applies linear attack and release ramps to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain to a beep volume effect
// Log2(0) is -Inf, so zero gain is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// clickStreamer builds one finite, enveloped sine click
func clickStreamer(cfg CueConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	tone, err := generators.SineTone(rate, cfg.ToneFrequency)
	if err != nil {
		return nil, fmt.Errorf("cue tone: %w", err)
	}
	n := rate.N(cfg.Duration)
	shaped := newEnvelope(beep.Take(n, tone), cfg.Duration, cfg.Attack, cfg.Release, rate)
	return newVolume(shaped, cfg.Volume), nil
}
