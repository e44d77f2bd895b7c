package texture

import "errors"

// Sentinel errors.
var (
	// ErrDecode is returned when a payload is not a supported image.
	ErrDecode = errors.New("texture: decode failed")

	// ErrEmptyData is returned when the payload has no bytes.
	ErrEmptyData = errors.New("texture: empty data")

	// ErrTooLarge is returned when the image exceeds the pixel limit.
	ErrTooLarge = errors.New("texture: image too large")
)
