package engine

import (
	"bytes"
	"errors"
	"log"
	"math"
	"os"
	"strings"
	"testing"
)

// countingUpdater records the sub-step deltas it receives
type countingUpdater struct {
	calls []float64
	fail  map[int]error
}

func (u *countingUpdater) Update(dt float64) error {
	n := len(u.calls)
	u.calls = append(u.calls, dt)
	return u.fail[n]
}

func TestStepperConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StepperConfig
		wantErr bool
	}{
		{"default", DefaultStepperConfig(), false},
		{"zero interval", StepperConfig{Interval: 0, MaxSubSteps: 8}, true},
		{"nan interval", StepperConfig{Interval: math.NaN(), MaxSubSteps: 8}, true},
		{"zero bound", StepperConfig{Interval: 0.002, MaxSubSteps: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStepper(tt.cfg)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidStepper) {
				t.Errorf("Expected ErrInvalidStepper, got %v", err)
			}
		})
	}
}

func TestStepper_Accumulates(t *testing.T) {
	s, err := NewStepper(StepperConfig{Interval: 0.002, MaxSubSteps: 64})
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}
	u := &countingUpdater{}

	frames := []struct {
		dt   float64
		want int
	}{
		{0.01, 5},
		{0.001, 0},  // carried
		{0.001, 1},  // carry completes one step
		{0.0035, 1}, // 0.0015 carried
		{0.0005, 1},
		{0, 0},
		{-0.1, 0},
		{0.016, 8},
	}

	total := 0
	for i, f := range frames {
		n, err := s.Advance(u, f.dt)
		if err != nil {
			t.Fatalf("Frame %d: unexpected error %v", i, err)
		}
		if n != f.want {
			t.Errorf("Frame %d: expected %d sub-steps, got %d", i, f.want, n)
		}
		total += n
	}

	if len(u.calls) != total || s.Steps() != uint64(total) {
		t.Errorf("Expected %d updates, got %d (steps %d)", total, len(u.calls), s.Steps())
	}
	for i, dt := range u.calls {
		if dt != 0.002 {
			t.Errorf("Call %d: expected fixed interval, got %v", i, dt)
		}
	}
	if p := s.Pending(); p < 0 || p >= s.Interval() {
		t.Errorf("Expected pending in [0, interval), got %v", p)
	}
}

func TestStepper_ClipsAndWarns(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s, _ := NewStepper(StepperConfig{Interval: 0.002, MaxSubSteps: 10})
	u := &countingUpdater{}

	n, err := s.Advance(u, 0.1)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if n != 10 {
		t.Errorf("Expected bound of 10 sub-steps, got %d", n)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected clipped time dropped, got pending %v", s.Pending())
	}
	if s.Clipped() != 1 {
		t.Errorf("Expected one clipped frame, got %d", s.Clipped())
	}
	if !strings.Contains(buf.String(), "[STEPPER]") {
		t.Errorf("Expected clip warning in log, got %q", buf.String())
	}
}

func TestStepper_RunsAllStepsOnError(t *testing.T) {
	s, _ := NewStepper(StepperConfig{Interval: 0.25, MaxSubSteps: 8})
	first := errors.New("first")
	u := &countingUpdater{fail: map[int]error{1: first, 2: errors.New("second")}}

	n, err := s.Advance(u, 1.0)
	if n != 4 || len(u.calls) != 4 {
		t.Errorf("Expected 4 sub-steps despite errors, got %d (%d calls)", n, len(u.calls))
	}
	if !errors.Is(err, first) {
		t.Errorf("Expected first error, got %v", err)
	}
}

func TestStepper_Reset(t *testing.T) {
	s, _ := NewStepper(StepperConfig{Interval: 0.25, MaxSubSteps: 8})
	s.Advance(&countingUpdater{}, 0.2)
	if s.Pending() != 0.2 {
		t.Fatalf("Expected 0.2 pending, got %v", s.Pending())
	}
	s.Reset()
	if s.Pending() != 0 {
		t.Errorf("Expected pending cleared, got %v", s.Pending())
	}
}
