package theme

import "errors"

var (
	// ErrShapeMismatch is returned when a step set does not have exactly
	// as many steps as the theme declares.
	ErrShapeMismatch = errors.New("step count mismatch")

	// ErrInvalidDirection is returned for direction tokens other than
	// "charging" and "discharging".
	ErrInvalidDirection = errors.New("invalid direction")
)
