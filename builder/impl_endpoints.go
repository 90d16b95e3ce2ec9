package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodEndpoints = "Endpoints"

// Endpoints marks a and b as the two endpoints, replacing whatever the cells
// held before. Existing endpoints elsewhere are cleared first.
func Endpoints(a, b gridgraph.Coord) Constructor {
	return func(g *gridgraph.Grid, _ config) error {
		if a == b {
			return fmt.Errorf("%s: both at %v: %w", methodEndpoints, a, ErrBadEndpoints)
		}
		if !g.InBounds(a) || !g.InBounds(b) {
			return fmt.Errorf("%s: %v, %v in %dx%d grid: %w",
				methodEndpoints, a, b, g.Width, g.Height, ErrBadEndpoints)
		}
		g.ClearType(gridgraph.Endpoint)
		_ = g.Set(a, gridgraph.Endpoint)
		_ = g.Set(b, gridgraph.Endpoint)
		return nil
	}
}

// Corners places the endpoints at the top-left and bottom-right cells.
func Corners() Constructor {
	return func(g *gridgraph.Grid, cfg config) error {
		return Endpoints(gridgraph.C(0, 0), gridgraph.C(g.Width-1, g.Height-1))(g, cfg)
	}
}
