package parameter

// Degenerate geometry guards, lengths below these skip the dependent computation
const (
	// SpringMinLength: coincident spring endpoints have no defined direction
	SpringMinLength = 1e-4

	// DirectionMinLength: heading, tangent and target vectors shorter than this are ignored
	DirectionMinLength = 1e-3

	// FrictionMinSpeed: horizontal speed below which kinetic ground friction is not applied
	FrictionMinSpeed = 1e-3

	// DirectionEpsilon: blended heading vectors shorter than this keep the prior heading
	DirectionEpsilon = 1e-6
)
