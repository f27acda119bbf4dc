package engine

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/lixenwraith/softsnake/parameter"
)

// ErrInvalidStepper is returned by NewStepper for unusable settings
var ErrInvalidStepper = errors.New("invalid stepper config")

// stepEpsilon absorbs float error when a frame delta is an exact multiple of the interval
const stepEpsilon = 1e-9

// Updater is a simulation advanced in fixed increments
type Updater interface {
	Update(dt float64) error
}

// StepperConfig sets the fixed sub-step interval and the per-frame bound
type StepperConfig struct {
	Interval    float64 // seconds
	MaxSubSteps int
}

func DefaultStepperConfig() StepperConfig {
	return StepperConfig{
		Interval:    parameter.SubStepIntervalFloat,
		MaxSubSteps: parameter.MaxSubSteps,
	}
}

func (c StepperConfig) Validate() error {
	if math.IsNaN(c.Interval) || math.IsInf(c.Interval, 0) || c.Interval <= 0 {
		return fmt.Errorf("%w: interval %v must be positive", ErrInvalidStepper, c.Interval)
	}
	if c.MaxSubSteps < 1 {
		return fmt.Errorf("%w: max sub-steps %d", ErrInvalidStepper, c.MaxSubSteps)
	}
	return nil
}

// Stepper splits variable frame deltas into fixed sub-steps
// Remainders below one interval carry over to the next frame
// Not safe for concurrent use
type Stepper struct {
	interval    float64
	maxSubSteps int

	accumulator float64
	steps       uint64 // total sub-steps run
	clipped     uint64 // frames that hit the bound
}

func NewStepper(cfg StepperConfig) (*Stepper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Stepper{
		interval:    cfg.Interval,
		maxSubSteps: cfg.MaxSubSteps,
	}, nil
}

// Advance runs as many whole sub-steps of target as dt allows
// When the bound clips, the excess time is dropped and a warning is logged
// Every sub-step runs even if one fails; the first error is returned
func (s *Stepper) Advance(target Updater, dt float64) (int, error) {
	if dt <= 0 || math.IsNaN(dt) {
		return 0, nil
	}

	s.accumulator += dt
	n := int(s.accumulator/s.interval + stepEpsilon)
	if n > s.maxSubSteps {
		dropped := s.accumulator - float64(s.maxSubSteps)*s.interval
		log.Printf("[STEPPER] %d sub-steps requested, bound %d, dropping %.4fs", n, s.maxSubSteps, dropped)
		s.clipped++
		n = s.maxSubSteps
		s.accumulator = 0
	} else {
		s.accumulator = math.Max(0, s.accumulator-float64(n)*s.interval)
	}

	var first error
	for i := 0; i < n; i++ {
		if err := target.Update(s.interval); err != nil && first == nil {
			first = err
		}
	}
	s.steps += uint64(n)
	return n, first
}

// Interval returns the fixed sub-step length in seconds
func (s *Stepper) Interval() float64 { return s.interval }

// Pending returns the carried-over time not yet simulated
func (s *Stepper) Pending() float64 { return s.accumulator }

// Steps returns the total number of sub-steps run
func (s *Stepper) Steps() uint64 { return s.steps }

// Clipped returns how many frames exceeded the sub-step bound
func (s *Stepper) Clipped() uint64 { return s.clipped }

// Reset discards carried-over time
func (s *Stepper) Reset() { s.accumulator = 0 }
