package snake

import "math"

// Update advances the body by dt seconds
// dt must respect the explicit integrator's stability bound; use engine.Stepper to sub-step
// A locomotion error (unsupported mode) is returned after the rest of the step has run
// Non-positive dt is a no-op
func (b *Body) Update(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) {
		return nil
	}

	for i := range b.masses {
		b.masses[i].ResetForce()
	}

	b.updateForwardDirection()
	b.applyGravity()

	var err error
	if b.moving {
		err = locomotions[b.mode].Actuate(b)
		b.timer += dt
		b.wrapTimer()
	} else {
		b.relaxSprings()
	}

	b.updateTarget()
	b.applySteeringForce()

	for i := range b.springs {
		b.springs[i].ApplyForce(b.masses)
	}

	if b.mode == ModeRectilinear {
		b.applyDirectionalFriction()
	}
	b.applyGroundFriction(dt)

	for i := range b.masses {
		b.masses[i].Update(dt)
	}

	b.resolveGroundContact()
	return err
}

func (b *Body) applyGravity() {
	g := b.tuning.Gravity
	if g == 0 {
		return
	}
	for i := range b.masses {
		m := &b.masses[i]
		m.ApplyForce(up.Mul(-g * m.Mass()))
	}
}
