package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodScatter    = "Scatter"
	methodSerpentine = "Serpentine"
	methodMaze       = "Maze"
)

// Scatter turns each cell into an obstacle independently with the configured
// density. Cells are visited in row-major order so a fixed seed always yields
// the same grid. Requires WithSeed or WithRand.
func Scatter() Constructor {
	return func(g *gridgraph.Grid, cfg config) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}
		for i := 0; i < g.Len(); i++ {
			if cfg.rng.Float64() < cfg.density {
				_ = g.Set(g.Coordinate(i), gridgraph.Obstacle)
			}
		}
		return nil
	}
}

// Serpentine raises a wall in every odd column. The k-th wall leaves a
// one-cell gap at the bottom row for even k and at the top row for odd k,
// so the only route from the left edge to the right edge winds through
// every gap. Deterministic; needs height ≥ 2.
func Serpentine() Constructor {
	return func(g *gridgraph.Grid, _ config) error {
		if g.Height < 2 {
			return fmt.Errorf("%s: height %d < 2: %w", methodSerpentine, g.Height, ErrBadDimensions)
		}
		for k, x := 0, 1; x < g.Width; k, x = k+1, x+2 {
			gap := g.Height - 1
			if k%2 == 1 {
				gap = 0
			}
			for y := 0; y < g.Height; y++ {
				if y != gap {
					_ = g.Set(gridgraph.C(x, y), gridgraph.Obstacle)
				}
			}
		}
		return nil
	}
}

// mazeSteps are the carving directions in fixed order.
var mazeSteps = [4]gridgraph.Coord{{X: 2}, {Y: 2}, {X: -2}, {Y: -2}}

// Maze fills the grid with obstacles and carves a perfect maze: rooms sit on
// even coordinates and exactly one corridor joins any two rooms.
// Uses randomized depth-first search with an explicit stack.
// Requires odd width and height and WithSeed or WithRand.
//
// Complexity: O(W·H) time and memory.
func Maze() Constructor {
	return func(g *gridgraph.Grid, cfg config) error {
		if g.Width%2 == 0 || g.Height%2 == 0 {
			return fmt.Errorf("%s: %dx%d must be odd: %w", methodMaze, g.Width, g.Height, ErrBadDimensions)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}

		// 1) Start solid.
		for i := 0; i < g.Len(); i++ {
			_ = g.Set(g.Coordinate(i), gridgraph.Obstacle)
		}

		// 2) Carve from the top-left room. A room still marked Obstacle is unvisited.
		start := gridgraph.C(0, 0)
		_ = g.Set(start, gridgraph.Empty)
		stack := []gridgraph.Coord{start}
		options := make([]gridgraph.Coord, 0, len(mazeSteps))

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			options = options[:0]
			for _, d := range mazeSteps {
				next := cur.Add(d)
				if g.InBounds(next) && g.Type(next) == gridgraph.Obstacle {
					options = append(options, next)
				}
			}
			if len(options) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}

			// 3) Knock down the wall between cur and a random unvisited room.
			next := options[cfg.rng.Intn(len(options))]
			wall := gridgraph.C((cur.X+next.X)/2, (cur.Y+next.Y)/2)
			_ = g.Set(wall, gridgraph.Empty)
			_ = g.Set(next, gridgraph.Empty)
			stack = append(stack, next)
		}
		return nil
	}
}
