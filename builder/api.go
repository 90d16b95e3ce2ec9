package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Constructor mutates g using the resolved config. Constructors validate
// their parameters early and return sentinel errors; they never panic.
type Constructor func(g *gridgraph.Grid, cfg config) error

// Build creates an empty width×height grid, resolves opts, and applies cons
// in order. Any constructor error is wrapped as "Build: %w".
func Build(width, height int, opts []Option, cons ...Constructor) (*gridgraph.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Build: %dx%d: %w", width, height, ErrBadDimensions)
	}
	g, err := gridgraph.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return g, nil
}
