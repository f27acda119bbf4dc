package physics

import "github.com/go-gl/mathgl/mgl64"

// KineticEnergy sums the kinetic energy of all masses
func KineticEnergy(masses []PointMass) float64 {
	var total float64
	for i := range masses {
		total += masses[i].KineticEnergy()
	}
	return total
}

// CenterOfMass returns the mass-weighted mean position, zero vector for an empty slice
func CenterOfMass(masses []PointMass) mgl64.Vec3 {
	var sum mgl64.Vec3
	var totalMass float64
	for i := range masses {
		sum = sum.Add(masses[i].position.Mul(masses[i].mass))
		totalMass += masses[i].mass
	}
	if totalMass == 0 {
		return mgl64.Vec3{}
	}
	return sum.Mul(1.0 / totalMass)
}
