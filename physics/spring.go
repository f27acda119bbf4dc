package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/parameter"
)

// DampedSpring links two masses of a shared slice by index
// The spring never owns its masses; indices stay valid as long as the owning slice is not resized
type DampedSpring struct {
	a, b       int
	stiffness  float64
	damping    float64
	restLength float64
}

// NewDampedSpring creates a spring between masses[a] and masses[b]
func NewDampedSpring(a, b int, stiffness, restLength, damping float64) DampedSpring {
	return DampedSpring{
		a:          a,
		b:          b,
		stiffness:  stiffness,
		damping:    damping,
		restLength: restLength,
	}
}

// Force returns the Hookean plus damping force acting on the first mass
// The second mass receives the exact negation
// Returns false when the endpoints coincide and no direction is defined
func (s *DampedSpring) Force(masses []PointMass) (mgl64.Vec3, bool) {
	m1, m2 := &masses[s.a], &masses[s.b]

	delta := m1.position.Sub(m2.position)
	length := delta.Len()
	if length < parameter.SpringMinLength {
		return mgl64.Vec3{}, false
	}

	unit := delta.Mul(1.0 / length)

	// f = -k(l - L) - D * (dl/dt)
	springMag := -s.stiffness * (length - s.restLength)
	dampingMag := -s.damping * m1.velocity.Sub(m2.velocity).Dot(unit)

	return unit.Mul(springMag + dampingMag), true
}

// ApplyForce adds the spring force to both endpoints, equal and opposite
func (s *DampedSpring) ApplyForce(masses []PointMass) {
	f, ok := s.Force(masses)
	if !ok {
		return
	}
	masses[s.a].ApplyForce(f)
	masses[s.b].ApplyForce(f.Mul(-1))
}

// Length returns the current endpoint distance
func (s *DampedSpring) Length(masses []PointMass) float64 {
	return masses[s.a].position.Sub(masses[s.b].position).Len()
}

// SetRestLength changes the unstressed length; this is the locomotion actuator
func (s *DampedSpring) SetRestLength(length float64) { s.restLength = length }

func (s *DampedSpring) RestLength() float64 { return s.restLength }
func (s *DampedSpring) Stiffness() float64 { return s.stiffness }
func (s *DampedSpring) Damping() float64 { return s.damping }

// Ends returns the indices of the two linked masses
func (s *DampedSpring) Ends() (a, b int) { return s.a, s.b }
