package snake

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/parameter"
)

// localTangent returns the ground-projected body direction at mass i, pointing headward
// Head and tail use their single neighbor, interior masses span both neighbors
func (b *Body) localTangent(i int) (mgl64.Vec3, bool) {
	last := len(b.masses) - 1
	var front, back int
	switch i {
	case 0:
		front, back = 0, 1
	case last:
		front, back = last-1, last
	default:
		front, back = i-1, i+1
	}
	return groundProject(b.masses[front].Position().Sub(b.masses[back].Position()))
}

// applyDirectionalFriction removes backward slip along the body tangent, like belly scales
// Forward slip is left untouched
func (b *Body) applyDirectionalFriction() {
	for i := range b.masses {
		t, ok := b.localTangent(i)
		if !ok {
			continue
		}
		m := &b.masses[i]
		v := m.Velocity()
		if along := v.Dot(t); along < 0 {
			m.SetVelocity(v.Sub(t.Mul(along)))
		}
	}
}

// applyGroundFriction applies kinetic friction against horizontal velocity
// The impulse over dt never exceeds the horizontal momentum, so friction cannot reverse motion
func (b *Body) applyGroundFriction(dt float64) {
	mu, g := b.tuning.GroundFriction, b.tuning.Gravity
	if mu == 0 || g == 0 {
		return
	}
	for i := range b.masses {
		m := &b.masses[i]
		h := m.Velocity()
		h[1] = 0
		speed := h.Len()
		if speed <= parameter.FrictionMinSpeed {
			continue
		}
		mag := math.Min(mu*m.Mass()*g, m.Mass()*speed/dt)
		m.ApplyForce(h.Mul(-mag / speed))
	}
}
