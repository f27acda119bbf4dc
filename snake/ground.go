package snake

import "github.com/lixenwraith/softsnake/parameter"

// resolveGroundContact keeps every mass at or above the ground height (the body radius)
func (b *Body) resolveGroundContact() {
	for i := range b.masses {
		m := &b.masses[i]
		p := m.Position()
		if p[1] >= b.radius {
			continue
		}
		p[1] = b.radius
		m.SetPosition(p)

		v := m.Velocity()
		if v[1] < 0 {
			v[1] = -v[1] * parameter.SnakeGroundRestitution
		}
		v[0] *= parameter.SnakeGroundSlideDamping
		v[2] *= parameter.SnakeGroundSlideDamping
		m.SetVelocity(v)
	}
}
