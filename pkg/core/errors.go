package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is wrapped by every construction-time validation
// failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Invalidf returns an error wrapping ErrInvalidConfiguration.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// CheckProbability validates that p lies in [0, 1].
func CheckProbability(key string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Invalidf("%s must be in [0,1], got %v", key, p)
	}
	return nil
}

// MaxCells caps the total number of cells a generator may allocate.
const MaxCells = 1 << 24

// CheckSize validates grid dimensions.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return Invalidf("grid size must be positive, got %dx%d", w, h)
	}
	if w > MaxCells/h {
		return Invalidf("grid size %dx%d exceeds %d cells", w, h, MaxCells)
	}
	return nil
}
