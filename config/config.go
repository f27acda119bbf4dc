// Package config loads simulation settings from a TOML file and SOFTSNAKE_* environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/audio"
	"github.com/lixenwraith/softsnake/engine"
	"github.com/lixenwraith/softsnake/snake"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SOFTSNAKE_"

// ErrUnknownKey is returned when the file holds keys no section declares
var ErrUnknownKey = errors.New("unknown config key")

// Config is the on-disk settings document
type Config struct {
	Body    Body    `toml:"body"`
	Tuning  Tuning  `toml:"tuning"`
	Stepper Stepper `toml:"stepper"`
	Audio   Audio   `toml:"audio"`
}

type Body struct {
	Mode           string     `toml:"mode"`
	SegmentCount   int        `toml:"segment_count"`
	SegmentMass    float64    `toml:"segment_mass"`
	SegmentLength  float64    `toml:"segment_length"`
	SpringConstant float64    `toml:"spring_constant"`
	Damping        float64    `toml:"damping"`
	Radius         float64    `toml:"radius"`
	Start          [3]float64 `toml:"start"`
}

type Tuning struct {
	Gravity        float64 `toml:"gravity"`
	ForwardDrive   float64 `toml:"forward_drive"`
	SteeringGain   float64 `toml:"steering_gain"`
	GroundFriction float64 `toml:"ground_friction"`
	WaveLength     int     `toml:"wave_length"`
	WaveAmplitude  float64 `toml:"wave_amplitude"`
	WaveFrequency  float64 `toml:"wave_frequency"`
}

type Stepper struct {
	Interval    float64 `toml:"interval"`
	MaxSubSteps int     `toml:"max_sub_steps"`
}

type Audio struct {
	Enabled       bool    `toml:"enabled"`
	SampleRate    int     `toml:"sample_rate"`
	ToneFrequency float64 `toml:"tone_frequency"`
	DurationMs    int     `toml:"duration_ms"`
	Volume        float64 `toml:"volume"`
}

// Default mirrors the parameter package defaults
func Default() Config {
	body := snake.DefaultConfig()
	tun := body.Tuning
	step := engine.DefaultStepperConfig()
	cue := audio.DefaultCueConfig()

	return Config{
		Body: Body{
			Mode:           snake.ModeRectilinear.String(),
			SegmentCount:   body.SegmentCount,
			SegmentMass:    body.SegmentMass,
			SegmentLength:  body.SegmentLength,
			SpringConstant: body.SpringConstant,
			Damping:        body.Damping,
			Radius:         body.Radius,
			Start:          [3]float64(body.Start),
		},
		Tuning: Tuning{
			Gravity:        tun.Gravity,
			ForwardDrive:   tun.ForwardDrive,
			SteeringGain:   tun.SteeringGain,
			GroundFriction: tun.GroundFriction,
			WaveLength:     tun.WaveLength,
			WaveAmplitude:  tun.WaveAmplitude,
			WaveFrequency:  tun.WaveFrequency,
		},
		Stepper: Stepper{
			Interval:    step.Interval,
			MaxSubSteps: step.MaxSubSteps,
		},
		Audio: Audio{
			Enabled:       cue.Enabled,
			SampleRate:    cue.SampleRate,
			ToneFrequency: cue.ToneFrequency,
			DurationMs:    int(cue.Duration / time.Millisecond),
			Volume:        cue.Volume,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	ApplyEnv(&cfg, os.LookupEnv)
	return cfg, cfg.Validate()
}

// Parse decodes a TOML document over the defaults; absent keys keep their default
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment; unparsable values are ignored
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if v, ok := get("MODE"); ok {
		cfg.Body.Mode = v
	}
	if v, ok := get("SEGMENTS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Body.SegmentCount = n
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"GRAVITY", &cfg.Tuning.Gravity},
		{"WAVE_AMPLITUDE", &cfg.Tuning.WaveAmplitude},
		{"WAVE_FREQUENCY", &cfg.Tuning.WaveFrequency},
		{"SUBSTEP", &cfg.Stepper.Interval},
	}
	for _, f := range floats {
		if v, ok := get(f.name); ok {
			if x, err := strconv.ParseFloat(v, 64); err == nil {
				*f.dst = x
			}
		}
	}

	if v, ok := get("AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}
	// Volume 0-100 converted to 0.0-1.0
	if v, ok := get("VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.Volume = min(max(float64(n)/100, 0), 1)
		}
	}
}

// Validate checks every section through its owning package
func (c Config) Validate() error {
	if _, err := c.MovementMode(); err != nil {
		return err
	}
	if err := c.BodyConfig().Validate(); err != nil {
		return err
	}
	if err := c.StepperConfig().Validate(); err != nil {
		return err
	}
	cue := c.CueConfig()
	if cue.Enabled {
		return cue.Validate()
	}
	return nil
}

func (c Config) MovementMode() (snake.MovementMode, error) {
	return snake.ParseMovementMode(c.Body.Mode)
}

func (c Config) BodyConfig() snake.Config {
	return snake.Config{
		SegmentCount:   c.Body.SegmentCount,
		SegmentMass:    c.Body.SegmentMass,
		SegmentLength:  c.Body.SegmentLength,
		SpringConstant: c.Body.SpringConstant,
		Damping:        c.Body.Damping,
		Radius:         c.Body.Radius,
		Start:          mgl64.Vec3(c.Body.Start),
		Tuning: snake.Tuning{
			Gravity:        c.Tuning.Gravity,
			ForwardDrive:   c.Tuning.ForwardDrive,
			SteeringGain:   c.Tuning.SteeringGain,
			GroundFriction: c.Tuning.GroundFriction,
			WaveLength:     c.Tuning.WaveLength,
			WaveAmplitude:  c.Tuning.WaveAmplitude,
			WaveFrequency:  c.Tuning.WaveFrequency,
		},
	}
}

func (c Config) StepperConfig() engine.StepperConfig {
	return engine.StepperConfig{
		Interval:    c.Stepper.Interval,
		MaxSubSteps: c.Stepper.MaxSubSteps,
	}
}

func (c Config) CueConfig() audio.CueConfig {
	cue := audio.DefaultCueConfig()
	cue.Enabled = c.Audio.Enabled
	cue.SampleRate = c.Audio.SampleRate
	cue.ToneFrequency = c.Audio.ToneFrequency
	cue.Duration = time.Duration(c.Audio.DurationMs) * time.Millisecond
	cue.Volume = c.Audio.Volume
	return cue
}

// NewBody builds the configured body in its configured movement mode
func (c Config) NewBody() (*snake.Body, error) {
	mode, err := c.MovementMode()
	if err != nil {
		return nil, err
	}
	b, err := snake.New(c.BodyConfig())
	if err != nil {
		return nil, err
	}
	if err := b.SetMovementMode(mode); err != nil {
		return nil, err
	}
	return b, nil
}
