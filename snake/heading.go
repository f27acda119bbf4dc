package snake

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/parameter"
)

// groundProject drops the vertical component and normalizes
// ok is false when the horizontal length is below parameter.DirectionMinLength
func groundProject(v mgl64.Vec3) (mgl64.Vec3, bool) {
	v[1] = 0
	l := v.Len()
	if l < parameter.DirectionMinLength {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// rightOf returns the right-hand ground perpendicular of a unit heading
func rightOf(forward mgl64.Vec3) mgl64.Vec3 {
	return forward.Cross(up)
}

// updateForwardDirection blends the head-to-neighbor direction into the smoothed heading
func (b *Body) updateForwardDirection() {
	dir, ok := groundProject(b.masses[0].Position().Sub(b.masses[1].Position()))
	if !ok {
		return
	}
	blend := b.forward.Mul(1 - parameter.SnakeHeadingSmoothing).Add(dir.Mul(parameter.SnakeHeadingSmoothing))
	if l := blend.Len(); l > parameter.DirectionEpsilon {
		b.forward = blend.Mul(1 / l)
	}
}

// updateTarget derives the desired heading from held inputs
func (b *Body) updateTarget() {
	if !b.moving {
		b.target = b.forward
		return
	}

	right := rightOf(b.forward)
	var sum mgl64.Vec3
	if b.input.Forward {
		sum = sum.Add(b.forward)
	}
	if b.input.Left {
		sum = sum.Sub(right)
	}
	if b.input.Right {
		sum = sum.Add(right)
	}

	if l := sum.Len(); l > parameter.DirectionMinLength {
		b.target = sum.Mul(1 / l)
	} else {
		b.target = b.forward
	}
}

// steeringError returns the signed turn, positive when the target lies to the left,
// and the angle between heading and target
func (b *Body) steeringError() (turn, angle float64) {
	turn = b.forward.Cross(b.target)[1]
	angle = math.Acos(mgl64.Clamp(b.forward.Dot(b.target), -1, 1))
	return turn, angle
}

// applySteeringForce pushes the front segments sideways toward the target and nudges the heading
// Returns whether a correction was applied
func (b *Body) applySteeringForce() bool {
	if !b.moving {
		return false
	}
	turn, angle := b.steeringError()
	if angle < parameter.SnakeSteerDeadband {
		return false
	}

	lateral := up.Cross(b.forward)
	base := lateral.Mul(turn * b.tuning.SteeringGain * angle)

	n := min(parameter.SnakeSteerPrefix, len(b.masses))
	for i := 0; i < n; i++ {
		weight := 1 - float64(i)/float64(n)
		b.masses[i].ApplyForce(base.Mul(weight))
	}

	nudged := b.forward.Add(b.target.Sub(b.forward).Mul(parameter.SnakeSteerHeadingBlend))
	if l := nudged.Len(); l > parameter.DirectionEpsilon {
		b.forward = nudged.Mul(1 / l)
	}
	return true
}
