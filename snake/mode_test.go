package snake

import (
	"errors"
	"math"
	"testing"
)

func TestMovementMode_StringAndParse(t *testing.T) {
	tests := []struct {
		mode MovementMode
		name string
	}{
		{ModeSimple, "simple"},
		{ModeLateral, "lateral"},
		{ModeRectilinear, "rectilinear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("Expected %q, got %q", tt.name, got)
			}
			got, err := ParseMovementMode(" " + tt.name + " ")
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got != tt.mode {
				t.Errorf("Expected %v, got %v", tt.mode, got)
			}
		})
	}

	if _, err := ParseMovementMode("sidewinding"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode for unknown mode, got %v", err)
	}
	if got, _ := ParseMovementMode("RECTILINEAR"); got != ModeRectilinear {
		t.Errorf("Expected case-insensitive parse, got %v", got)
	}
	if got := MovementMode(9).String(); got != "mode(9)" {
		t.Errorf("Expected mode(9), got %q", got)
	}
}

func TestMovementMode_Next(t *testing.T) {
	m := ModeSimple
	want := []MovementMode{ModeLateral, ModeRectilinear, ModeSimple}
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Errorf("Step %d: expected %v, got %v", i, w, m)
		}
	}
}

func TestSetMovementMode(t *testing.T) {
	b := newDefault(t)
	if err := b.SetMovementMode(ModeSimple); err != nil {
		t.Fatalf("SetMovementMode failed: %v", err)
	}
	if b.Mode() != ModeSimple {
		t.Errorf("Expected simple, got %v", b.Mode())
	}

	for _, m := range []MovementMode{modeCount, MovementMode(200)} {
		if err := b.SetMovementMode(m); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("Mode %d: expected ErrInvalidMode, got %v", int(m), err)
		}
		if b.Mode() != ModeSimple {
			t.Errorf("Mode %d: expected mode unchanged, got %v", int(m), b.Mode())
		}
	}
}

func TestRectilinearProgression_Wave(t *testing.T) {
	b := newDefault(t)
	// Quarter period at 1 Hz: temporal phase pi/2
	b.timer = 0.25
	if err := (rectilinearProgression{}).Actuate(b); err != nil {
		t.Fatalf("Actuate failed: %v", err)
	}

	L, amp := b.SegmentLength(), b.WaveAmplitude()
	// Springs 0 and 4 share spatial phase 0 with a 4-spring wavelength: sin(pi/2) = 1
	for _, i := range []int{0, 4} {
		want := L * (1 - amp)
		if got := b.springs[i].RestLength(); math.Abs(got-want) > eps {
			t.Errorf("Spring %d: expected %v, got %v", i, want, got)
		}
	}
	// Spring 2 is half a wavelength behind: sin(-pi/2) = -1
	if got, want := b.springs[2].RestLength(), L*(1+amp); math.Abs(got-want) > eps {
		t.Errorf("Spring 2: expected %v, got %v", want, got)
	}
}

func TestSimpleDrive_PushesHead(t *testing.T) {
	b := newDefault(t)
	if err := (simpleDrive{}).Actuate(b); err != nil {
		t.Fatalf("Actuate failed: %v", err)
	}
	masses := b.Masses()
	if got := masses[0].Force()[0]; math.Abs(got-b.Tuning().ForwardDrive) > eps {
		t.Errorf("Expected head drive %v, got %v", b.Tuning().ForwardDrive, got)
	}
	if got := masses[1].Force(); got[0] != 0 {
		t.Errorf("Expected drive on the head only, got %v", got)
	}
}

