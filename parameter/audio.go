package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Wave cycle cue
const (
	CueToneFrequency = 660.0 // Hz
	CueToneDuration  = 40 * time.Millisecond
	CueVolume        = 0.5 // 0.0 to 1.0
)

// Cue envelope, click edges keep the tone from popping
const (
	CueAttack  = 4 * time.Millisecond
	CueRelease = 20 * time.Millisecond
)
