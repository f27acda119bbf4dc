package snake

import "errors"

var (
	// ErrInvalidConfig is returned by New for unusable construction parameters
	ErrInvalidConfig = errors.New("invalid snake config")

	// ErrInvalidTuning is returned by tuning setters for out-of-range values
	ErrInvalidTuning = errors.New("invalid snake tuning")

	// ErrInvalidDirection is returned for directional input outside Forward/Left/Right
	ErrInvalidDirection = errors.New("invalid move direction")

	// ErrInvalidMode is returned for movement modes outside Simple/Lateral/Rectilinear
	ErrInvalidMode = errors.New("invalid movement mode")

	// ErrModeUnsupported is returned by Update when the active movement mode has no locomotion
	ErrModeUnsupported = errors.New("movement mode not supported")
)
