package builder

import "errors"

var (
	// ErrBadDimensions indicates a size the requested constructor cannot use.
	ErrBadDimensions = errors.New("builder: invalid grid dimensions")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrBadEndpoints indicates endpoints outside the grid or on the same cell.
	ErrBadEndpoints = errors.New("builder: invalid endpoints")

	// ErrConstructFailed indicates a nil constructor was passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
