package snake

import (
	"fmt"
	"math"
	"strings"
)

// MovementMode selects the locomotion strategy applied while moving
type MovementMode uint8

const (
	ModeSimple MovementMode = iota
	ModeLateral
	ModeRectilinear

	modeCount
)

var modeNames = [modeCount]string{
	ModeSimple:      "simple",
	ModeLateral:     "lateral",
	ModeRectilinear: "rectilinear",
}

func (m MovementMode) String() string {
	if m >= modeCount {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// Next cycles Simple -> Lateral -> Rectilinear -> Simple
func (m MovementMode) Next() MovementMode {
	return (m + 1) % modeCount
}

// ParseMovementMode accepts the lowercase mode names, case-insensitive
func ParseMovementMode(s string) (MovementMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if s == name {
			return MovementMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Locomotion produces the active drive of one movement mode for a single step
// Handlers run only while the body is moving
type Locomotion interface {
	Actuate(b *Body) error
}

// locomotions is indexed by MovementMode
var locomotions = [modeCount]Locomotion{
	ModeSimple:      simpleDrive{},
	ModeLateral:     lateralUndulation{},
	ModeRectilinear: rectilinearProgression{},
}

// simpleDrive pushes the head along the heading with a constant force
type simpleDrive struct{}

func (simpleDrive) Actuate(b *Body) error {
	b.masses[0].ApplyForce(b.forward.Mul(b.tuning.ForwardDrive))
	return nil
}

// lateralUndulation is the S-shaped gait, not implemented
type lateralUndulation struct{}

func (lateralUndulation) Actuate(*Body) error {
	return fmt.Errorf("%w: %s", ErrModeUnsupported, ModeLateral)
}

// rectilinearProgression drives a traveling contraction wave through the spring rest lengths
type rectilinearProgression struct{}

func (rectilinearProgression) Actuate(b *Body) error {
	wl := b.tuning.WaveLength
	temporal := 2 * math.Pi * b.tuning.WaveFrequency * b.timer

	for i := range b.springs {
		spatial := 2 * math.Pi * float64(i%wl) / float64(wl)
		wave := math.Sin(temporal - spatial)
		b.springs[i].SetRestLength(b.segmentLength * (1 - b.tuning.WaveAmplitude*wave))
	}
	return nil
}
