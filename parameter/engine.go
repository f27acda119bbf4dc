package parameter

import "time"

// Driver loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDeltaFloat caps one frame's simulated time in seconds
	// A stalled terminal or a debugger pause must not turn into a multi-second step request
	MaxFrameDeltaFloat = 0.1
)

// Physics sub-stepping
const (
	// SubStepIntervalFloat is the fixed integration interval in seconds
	// Explicit spring integration is stable while dt stays well below sqrt(mass/stiffness)
	SubStepIntervalFloat = 0.002

	// MaxSubSteps bounds the work done for one frame; excess simulated time is dropped
	MaxSubSteps = 64
)
