package parameter

// Snake body defaults, used by drivers and the config package when no file overrides them
const (
	SnakeDefaultSegmentCount  = 7
	SnakeSegmentMassFloat     = 0.02
	SnakeSegmentLengthFloat   = 0.178
	SnakeSpringStiffnessFloat = 1.0
	SnakeSpringDampingFloat   = 3.5
	SnakeRadiusFloat          = 0.2

	// SnakeMinSegmentCount: a chain needs at least one spring
	SnakeMinSegmentCount = 2

	// SnakeTailMassBias: tail segment carries (1 + bias) times the head segment mass,
	// intermediate segments are interpolated linearly
	SnakeTailMassBias = 0.5
)

// Snake locomotion tuning
const (
	SnakeGravityFloat        = 9.8
	SnakeForwardDriveFloat   = 0.05 // Newtons on the head in Simple mode
	SnakeSteeringGainFloat   = 0.1
	SnakeGroundFrictionFloat = 0.05

	// SnakeWaveLengthSegments: springs per peristaltic wavelength
	SnakeWaveLengthSegments = 4

	// SnakeWaveAmplitudeFloat: fractional rest-length modulation, must stay below 1
	SnakeWaveAmplitudeFloat = 0.3
	SnakeWaveFrequencyFloat = 1.0 // Hz

	// SnakeTimerWrapCycles: movement timer wraps after this many wave periods
	SnakeTimerWrapCycles = 10.0
)

// Snake heading and steering
const (
	// SnakeHeadingSmoothing: weight of the freshly measured head direction per step
	SnakeHeadingSmoothing = 0.3

	// SnakeSteerDeadband: radians below which no steering correction is applied
	SnakeSteerDeadband = 0.01

	// SnakeSteerPrefix: leading masses receiving steering force, weight decays linearly
	SnakeSteerPrefix = 3

	// SnakeSteerHeadingBlend: fraction of (target - heading) folded into heading per steered step
	SnakeSteerHeadingBlend = 0.03
)

// Snake ground contact
const (
	// SnakeGroundRestitution: fraction of downward speed returned on ground contact
	SnakeGroundRestitution = 0.2

	// SnakeGroundSlideDamping: horizontal velocity factor applied on ground contact
	SnakeGroundSlideDamping = 0.98
)
