// Package snake implements a soft-bodied snake: a chain of point masses joined by damped springs,
// driven by a peristaltic rest-length wave and a one-way ground friction
package snake

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/parameter"
	"github.com/lixenwraith/softsnake/physics"
)

// canonicalHeading is the heading of a freshly built or reset body
var canonicalHeading = mgl64.Vec3{1, 0, 0}

var up = mgl64.Vec3{0, 1, 0}

// Body owns the mass chain and springs of one snake
// Mass 0 is the head; spring i links masses i and i+1
// Not safe for concurrent use
type Body struct {
	masses  []physics.PointMass
	springs []physics.DampedSpring
	initial []mgl64.Vec3 // construction positions, restored by Reset

	segmentLength float64
	radius        float64
	tuning        Tuning

	mode   MovementMode
	moving bool
	input  Input

	forward mgl64.Vec3 // smoothed ground-plane heading, unit length
	target  mgl64.Vec3 // desired heading
	timer   float64    // movement phase clock, wraps every SnakeTimerWrapCycles periods
}

// New builds the mass chain along -x behind the head at cfg.Start, resting on the ground
func New(cfg Config) (*Body, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}

	n := cfg.SegmentCount
	b := &Body{
		masses:        make([]physics.PointMass, n),
		springs:       make([]physics.DampedSpring, n-1),
		initial:       make([]mgl64.Vec3, n),
		segmentLength: cfg.SegmentLength,
		radius:        cfg.Radius,
		tuning:        cfg.Tuning,
		mode:          ModeRectilinear,
		forward:       canonicalHeading,
		target:        canonicalHeading,
	}

	for i := 0; i < n; i++ {
		pos := cfg.Start.Sub(canonicalHeading.Mul(float64(i) * cfg.SegmentLength))
		pos[1] = cfg.Radius
		b.initial[i] = pos
		b.masses[i] = physics.NewPointMass(segmentMass(cfg.SegmentMass, i, n), pos)
	}

	for i := 0; i < n-1; i++ {
		b.springs[i] = physics.NewDampedSpring(i, i+1, cfg.SpringConstant, cfg.SegmentLength, cfg.Damping)
	}

	return b, nil
}

// segmentMass grades mass linearly from head to tail
func segmentMass(base float64, i, n int) float64 {
	return base * (1 + parameter.SnakeTailMassBias*float64(i)/float64(n-1))
}

// Reset restores the construction state without reallocating
// Movement mode and tuning are kept
func (b *Body) Reset() {
	b.moving = false
	b.input = Input{}
	b.timer = 0
	b.forward = canonicalHeading
	b.target = canonicalHeading

	for i := range b.masses {
		b.masses[i] = physics.NewPointMass(b.masses[i].Mass(), b.initial[i])
	}
	b.relaxSprings()
}

func (b *Body) relaxSprings() {
	for i := range b.springs {
		b.springs[i].SetRestLength(b.segmentLength)
	}
}

// --- Movement control ---

func (b *Body) StartMoving()   { b.moving = true }
func (b *Body) StopMoving()    { b.moving = false }
func (b *Body) IsMoving() bool { return b.moving }

// SetMovementMode switches locomotion strategy; the wave phase is kept
// An unknown mode is rejected and the current one stays active
func (b *Body) SetMovementMode(m MovementMode) error {
	if m >= modeCount {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	b.mode = m
	return nil
}

func (b *Body) Mode() MovementMode { return b.mode }

// --- Tuning ---

func (b *Body) Tuning() Tuning { return b.tuning }

// SetTuning replaces all locomotion constants at once
func (b *Body) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	b.tuning = t
	b.wrapTimer()
	return nil
}

func (b *Body) SetWaveAmplitude(a float64) error {
	if err := checkAmplitude(a); err != nil {
		return err
	}
	b.tuning.WaveAmplitude = a
	return nil
}

func (b *Body) SetWaveFrequency(f float64) error {
	if err := checkFrequency(f); err != nil {
		return err
	}
	b.tuning.WaveFrequency = f
	b.wrapTimer()
	return nil
}

// SetGravity sets the gravity magnitude; zero disables gravity and with it ground friction
func (b *Body) SetGravity(g float64) error {
	t := b.tuning
	t.Gravity = g
	if err := t.Validate(); err != nil {
		return err
	}
	b.tuning = t
	return nil
}

func (b *Body) WaveAmplitude() float64 { return b.tuning.WaveAmplitude }
func (b *Body) WaveFrequency() float64 { return b.tuning.WaveFrequency }

// WaveCycles returns the elapsed wave periods within the current timer window
func (b *Body) WaveCycles() float64 { return b.timer * b.tuning.WaveFrequency }

func (b *Body) wrapTimer() {
	b.timer = math.Mod(b.timer, parameter.SnakeTimerWrapCycles/b.tuning.WaveFrequency)
}

// --- Queries ---

func (b *Body) HeadPosition() mgl64.Vec3     { return b.masses[0].Position() }
func (b *Body) ForwardDirection() mgl64.Vec3 { return b.forward }
func (b *Body) TargetDirection() mgl64.Vec3  { return b.target }
func (b *Body) Radius() float64              { return b.radius }
func (b *Body) SegmentLength() float64       { return b.segmentLength }
func (b *Body) SegmentCount() int            { return len(b.masses) }

// Masses returns a copy of the mass chain, head first
func (b *Body) Masses() []physics.PointMass {
	out := make([]physics.PointMass, len(b.masses))
	copy(out, b.masses)
	return out
}

// MutableMasses exposes the owned mass chain; callers must not append to or reslice it
func (b *Body) MutableMasses() []physics.PointMass { return b.masses }

// Positions appends mass positions to dst, head first, for per-frame geometry rebuilds
func (b *Body) Positions(dst []mgl64.Vec3) []mgl64.Vec3 {
	for i := range b.masses {
		dst = append(dst, b.masses[i].Position())
	}
	return dst
}

// Springs returns a copy of the springs
func (b *Body) Springs() []physics.DampedSpring {
	out := make([]physics.DampedSpring, len(b.springs))
	copy(out, b.springs)
	return out
}

// RestLengths appends the current spring rest lengths to dst
func (b *Body) RestLengths(dst []float64) []float64 {
	for i := range b.springs {
		dst = append(dst, b.springs[i].RestLength())
	}
	return dst
}

// SpringLengths appends the current endpoint distance of each spring to dst
func (b *Body) SpringLengths(dst []float64) []float64 {
	for i := range b.springs {
		dst = append(dst, b.springs[i].Length(b.masses))
	}
	return dst
}

func (b *Body) KineticEnergy() float64   { return physics.KineticEnergy(b.masses) }
func (b *Body) CenterOfMass() mgl64.Vec3 { return physics.CenterOfMass(b.masses) }
