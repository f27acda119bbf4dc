package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PointMass is a particle with an accumulated force buffer
// Force must be cleared with ResetForce once per step before new forces are applied
type PointMass struct {
	mass     float64
	position mgl64.Vec3
	velocity mgl64.Vec3
	force    mgl64.Vec3
}

// NewPointMass creates a particle at rest; mass is fixed for the particle's lifetime
func NewPointMass(mass float64, position mgl64.Vec3) PointMass {
	return PointMass{
		mass:     mass,
		position: position,
	}
}

// ApplyForce accumulates f into the force buffer
func (m *PointMass) ApplyForce(f mgl64.Vec3) {
	m.force = m.force.Add(f)
}

// ResetForce zeroes the force buffer
func (m *PointMass) ResetForce() {
	m.force = mgl64.Vec3{}
}

// Update integrates with semi-implicit Euler: v += F/m*dt, then x += v*dt
// No clamping is done, the caller picks a stable dt
func (m *PointMass) Update(dt float64) {
	m.velocity = m.PredictVelocity(dt)
	m.position = m.position.Add(m.velocity.Mul(dt))
}

// PredictVelocity returns the velocity the current force would produce after dt, without mutating
func (m *PointMass) PredictVelocity(dt float64) mgl64.Vec3 {
	accel := m.force.Mul(1.0 / m.mass)
	return m.velocity.Add(accel.Mul(dt))
}

func (m *PointMass) Mass() float64 { return m.mass }
func (m *PointMass) Position() mgl64.Vec3 { return m.position }
func (m *PointMass) Velocity() mgl64.Vec3 { return m.velocity }
func (m *PointMass) Force() mgl64.Vec3 { return m.force }
func (m *PointMass) SetPosition(p mgl64.Vec3) { m.position = p }
func (m *PointMass) SetVelocity(v mgl64.Vec3) { m.velocity = v }

// KineticEnergy returns 0.5*m*|v|^2
func (m *PointMass) KineticEnergy() float64 {
	return 0.5 * m.mass * m.velocity.Dot(m.velocity)
}
