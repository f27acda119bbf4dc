package snake

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestUpdateTarget(t *testing.T) {
	diag := mgl64.Vec3{1, 0, 1}.Normalize()

	tests := []struct {
		name   string
		moving bool
		input  Input
		want   mgl64.Vec3
	}{
		{"not moving keeps heading", false, Input{Right: true}, mgl64.Vec3{1, 0, 0}},
		{"forward", true, Input{Forward: true}, mgl64.Vec3{1, 0, 0}},
		{"left", true, Input{Left: true}, mgl64.Vec3{0, 0, -1}},
		{"right", true, Input{Right: true}, mgl64.Vec3{0, 0, 1}},
		{"forward and right", true, Input{Forward: true, Right: true}, diag},
		{"left and right cancel", true, Input{Left: true, Right: true}, mgl64.Vec3{1, 0, 0}},
		{"moving without input", true, Input{}, mgl64.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newDefault(t)
			b.moving = tt.moving
			b.input = tt.input
			b.updateTarget()
			if !b.TargetDirection().ApproxEqualThreshold(tt.want, eps) {
				t.Errorf("Expected target %v, got %v", tt.want, b.TargetDirection())
			}
		})
	}
}

func TestUpdateForwardDirection(t *testing.T) {
	b := newDefault(t)
	masses := b.MutableMasses()

	// Head lifted straight up: horizontal delta is unchanged, heading stays +x
	p := masses[0].Position()
	p[1] += 0.3
	masses[0].SetPosition(p)
	b.updateForwardDirection()
	if !b.ForwardDirection().ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, eps) {
		t.Errorf("Expected ground-projected heading +x, got %v", b.ForwardDirection())
	}

	// Head swung to +z: heading moves partway toward +z and stays unit length
	masses[0].SetPosition(masses[1].Position().Add(mgl64.Vec3{0, 0, b.SegmentLength()}))
	b.updateForwardDirection()
	f := b.ForwardDirection()
	if f[2] <= 0 || f[0] <= 0 {
		t.Errorf("Expected heading blended between +x and +z, got %v", f)
	}
	if math.Abs(f.Len()-1) > eps {
		t.Errorf("Expected unit heading, got length %v", f.Len())
	}
	if f[1] != 0 {
		t.Errorf("Expected ground-plane heading, got %v", f)
	}
}

func TestUpdateForwardDirection_DegenerateKeepsHeading(t *testing.T) {
	b := newDefault(t)
	b.forward = mgl64.Vec3{0, 0, 1}
	masses := b.MutableMasses()

	// Head directly above its neighbor
	masses[0].SetPosition(masses[1].Position().Add(mgl64.Vec3{0, 0.5, 0}))
	b.updateForwardDirection()
	if b.ForwardDirection() != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Expected prior heading to be kept, got %v", b.ForwardDirection())
	}
}

func TestApplySteeringForce_Convergence(t *testing.T) {
	b := newDefault(t)
	b.moving = true
	b.target = mgl64.Vec3{1, 0, 1}.Normalize()

	_, prev := b.steeringError()
	converged := false
	for call := 0; call < 2000; call++ {
		for i := range b.masses {
			b.masses[i].ResetForce()
		}
		applied := b.applySteeringForce()
		_, angle := b.steeringError()

		if angle > prev+eps {
			t.Fatalf("Call %d: angle grew from %v to %v", call, prev, angle)
		}
		if !applied {
			if prev >= 0.01 {
				t.Fatalf("Call %d: no correction at angle %v", call, prev)
			}
			for i, m := range b.Masses() {
				if m.Force() != (mgl64.Vec3{}) {
					t.Errorf("Mass %d: expected no steering force inside the dead-band, got %v", i, m.Force())
				}
			}
			converged = true
			break
		}
		prev = angle
	}
	if !converged {
		t.Errorf("Expected steering to converge, final angle %v", prev)
	}
}

func TestApplySteeringForce_PushesTowardTarget(t *testing.T) {
	tests := []struct {
		name   string
		target mgl64.Vec3
		sign   float64 // expected sign of head force z
	}{
		{"right", mgl64.Vec3{1, 0, 1}.Normalize(), 1},
		{"left", mgl64.Vec3{1, 0, -1}.Normalize(), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newDefault(t)
			b.moving = true
			b.target = tt.target
			if !b.applySteeringForce() {
				t.Fatalf("Expected steering to apply")
			}

			masses := b.Masses()
			head := masses[0].Force()[2]
			if head*tt.sign <= 0 {
				t.Errorf("Expected head force z with sign %v, got %v", tt.sign, head)
			}
			// Decaying prefix: head strongest, tail untouched
			if math.Abs(masses[1].Force()[2]) >= math.Abs(head) {
				t.Errorf("Expected weaker force behind the head, got %v vs %v", masses[1].Force()[2], head)
			}
			if last := masses[len(masses)-1].Force(); last != (mgl64.Vec3{}) {
				t.Errorf("Expected no steering force on the tail, got %v", last)
			}
			if b.ForwardDirection()[2]*tt.sign <= 0 {
				t.Errorf("Expected heading nudged toward target, got %v", b.ForwardDirection())
			}
		})
	}
}

func TestApplySteeringForce_Deadband(t *testing.T) {
	b := newDefault(t)
	b.moving = true
	b.target = mgl64.Vec3{math.Cos(0.005), 0, math.Sin(0.005)}

	if b.applySteeringForce() {
		t.Errorf("Expected no correction below the dead-band")
	}
	if b.ForwardDirection() != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Expected heading unchanged, got %v", b.ForwardDirection())
	}
	if f := b.Masses()[0].Force(); f != (mgl64.Vec3{}) {
		t.Errorf("Expected no force, got %v", f)
	}
}

func TestApplySteeringForce_NotMoving(t *testing.T) {
	b := newDefault(t)
	b.target = mgl64.Vec3{0, 0, 1}
	if b.applySteeringForce() {
		t.Errorf("Expected no steering while stopped")
	}
}

func TestUpdate_HeldTurnRotatesHeading(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		sign float64 // expected sign of heading and head z
	}{
		{"left", DirLeft, -1},
		{"right", DirRight, 1},
	}

	headings := map[Direction]mgl64.Vec3{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newDefault(t)
			b.SetMoveDirection(DirForward, true)
			b.SetMoveDirection(tt.dir, true)

			for i := 0; i < 100; i++ {
				if err := b.Update(stepDt); err != nil {
					t.Fatalf("Step %d: %v", i, err)
				}
			}

			f := b.ForwardDirection()
			if f[2]*tt.sign < 0.05 {
				t.Errorf("Expected heading turned %s, got %v", tt.name, f)
			}
			if f[0] <= 0 {
				t.Errorf("Expected heading still mostly forward, got %v", f)
			}
			if z := b.HeadPosition()[2]; z*tt.sign <= 0 {
				t.Errorf("Expected head displaced %s, got z=%v", tt.name, z)
			}
			headings[tt.dir] = f
		})
	}

	// Left and right are mirror images across the x axis
	l, r := headings[DirLeft], headings[DirRight]
	if math.Abs(l[0]-r[0]) > 1e-9 || math.Abs(l[2]+r[2]) > 1e-9 {
		t.Errorf("Expected mirrored headings, got left %v right %v", l, r)
	}
}
