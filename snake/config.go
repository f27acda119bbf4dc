package snake

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/parameter"
)

// Config holds the construction parameters of a Body
type Config struct {
	SegmentCount   int
	SegmentMass    float64 // head segment mass, tail segments are heavier
	SegmentLength  float64 // nominal spring rest length
	SpringConstant float64
	Damping        float64
	Start          mgl64.Vec3 // head position; y is replaced by the ground height
	Radius         float64    // segment sphere radius, also the resting ground height

	// Tuning left at its zero value is replaced by DefaultTuning
	Tuning Tuning
}

// Tuning holds the locomotion constants that may change at runtime
type Tuning struct {
	Gravity        float64 // magnitude, applied along -y
	ForwardDrive   float64 // head force in Simple mode
	SteeringGain   float64
	GroundFriction float64 // kinetic coefficient
	WaveLength     int     // springs per peristaltic wavelength
	WaveAmplitude  float64 // fractional rest-length modulation in [0, 1)
	WaveFrequency  float64 // Hz
}

// DefaultConfig returns the reference 7-segment body at the origin
func DefaultConfig() Config {
	return Config{
		SegmentCount:   parameter.SnakeDefaultSegmentCount,
		SegmentMass:    parameter.SnakeSegmentMassFloat,
		SegmentLength:  parameter.SnakeSegmentLengthFloat,
		SpringConstant: parameter.SnakeSpringStiffnessFloat,
		Damping:        parameter.SnakeSpringDampingFloat,
		Radius:         parameter.SnakeRadiusFloat,
		Tuning:         DefaultTuning(),
	}
}

// DefaultTuning returns the locomotion constants from the parameter package
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:        parameter.SnakeGravityFloat,
		ForwardDrive:   parameter.SnakeForwardDriveFloat,
		SteeringGain:   parameter.SnakeSteeringGainFloat,
		GroundFriction: parameter.SnakeGroundFrictionFloat,
		WaveLength:     parameter.SnakeWaveLengthSegments,
		WaveAmplitude:  parameter.SnakeWaveAmplitudeFloat,
		WaveFrequency:  parameter.SnakeWaveFrequencyFloat,
	}
}

// Validate reports the first invalid construction parameter, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	if c.SegmentCount < parameter.SnakeMinSegmentCount {
		return fmt.Errorf("%w: segment count %d, need at least %d", ErrInvalidConfig, c.SegmentCount, parameter.SnakeMinSegmentCount)
	}
	checks := []struct {
		name  string
		value float64
		zero  bool // zero allowed
	}{
		{"segment mass", c.SegmentMass, false},
		{"segment length", c.SegmentLength, false},
		{"spring constant", c.SpringConstant, false},
		{"damping", c.Damping, true},
		{"radius", c.Radius, false},
	}
	for _, ch := range checks {
		if err := checkScalar(ch.name, ch.value, ch.zero); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	for i := 0; i < 3; i++ {
		if !finite(c.Start[i]) {
			return fmt.Errorf("%w: start position %v is not finite", ErrInvalidConfig, c.Start)
		}
	}
	if c.Tuning != (Tuning{}) {
		if err := c.Tuning.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Validate reports the first out-of-range tuning value, wrapped in ErrInvalidTuning
func (t Tuning) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"gravity", t.Gravity},
		{"forward drive", t.ForwardDrive},
		{"steering gain", t.SteeringGain},
		{"ground friction", t.GroundFriction},
	}
	for _, ch := range checks {
		if err := checkScalar(ch.name, ch.value, true); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
		}
	}
	if t.WaveLength < 1 {
		return fmt.Errorf("%w: wave length %d segments", ErrInvalidTuning, t.WaveLength)
	}
	if err := checkAmplitude(t.WaveAmplitude); err != nil {
		return err
	}
	return checkFrequency(t.WaveFrequency)
}

func checkAmplitude(a float64) error {
	if !finite(a) || a < 0 || a >= 1 {
		return fmt.Errorf("%w: wave amplitude %v outside [0, 1)", ErrInvalidTuning, a)
	}
	return nil
}

func checkFrequency(f float64) error {
	if !finite(f) || f <= 0 {
		return fmt.Errorf("%w: wave frequency %v must be positive", ErrInvalidTuning, f)
	}
	return nil
}

func checkScalar(name string, v float64, zeroOK bool) error {
	switch {
	case !finite(v):
		return fmt.Errorf("%s %v is not finite", name, v)
	case v < 0, v == 0 && !zeroOK:
		return fmt.Errorf("%s %v out of range", name, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
