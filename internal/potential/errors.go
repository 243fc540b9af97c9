package potential

import (
	"errors"
	"fmt"
)

// Validation errors for mass configurations and grids.
var (
	// ErrNonPositiveMass indicates m1 or m2 is zero or negative.
	ErrNonPositiveMass = errors.New("potential: non-positive mass")

	// ErrMassRatioOutOfRange indicates the secondary outweighs the primary.
	ErrMassRatioOutOfRange = errors.New("potential: mass ratio m2/m1 exceeds 1")

	// ErrNonPositiveRadius indicates a zero or negative orbital radius.
	ErrNonPositiveRadius = errors.New("potential: non-positive orbital radius")

	// ErrShapeMismatch indicates the x and y coordinate grids disagree in shape.
	ErrShapeMismatch = errors.New("potential: grid shape mismatch")
)

// ConfigError wraps a validation failure with the offending parameter
// and its value.
type ConfigError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s = %g)", e.Wrapped.Error(), e.Param, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

// ShapeError reports the two grid shapes that failed to match.
type ShapeError struct {
	XRows, XCols int
	YRows, YCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s (x grid %dx%d, y grid %dx%d)",
		ErrShapeMismatch.Error(), e.XRows, e.XCols, e.YRows, e.YCols)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
