package render

import "errors"

// Sentinel errors.
var (
	// ErrDestroyed is returned when a window is used after Destroy.
	ErrDestroyed = errors.New("render: window destroyed")

	// ErrInvalidConfig is returned when a window configuration is unusable.
	ErrInvalidConfig = errors.New("render: invalid window config")
)
