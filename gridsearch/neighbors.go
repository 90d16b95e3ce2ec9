package gridsearch

import "github.com/katalvlaran/gridpath/gridgraph"

// cardinals rotate clockwise from east with y growing downward: E, S, W, N.
var cardinals = [4]gridgraph.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// diagonals[i] lies between cardinals[i] and cardinals[(i+1)%4]: SE, SW, NW, NE.
var diagonals = [4]gridgraph.Coord{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}

// Neighbors returns the cells reachable from c in one step: open cardinal
// cells, then (if diagonal) open diagonal cells whose corner is not cut.
func Neighbors(g *gridgraph.Grid, c gridgraph.Coord, diagonal bool) []gridgraph.Coord {
	return appendNeighbors(make([]gridgraph.Coord, 0, 8), g, c, diagonal)
}

// appendNeighbors appends the neighbors of c to buf in E, S, W, N, SE, SW,
// NW, NE order. Diagonal i requires cardinal i or cardinal i+1 to be open.
func appendNeighbors(buf []gridgraph.Coord, g *gridgraph.Grid, c gridgraph.Coord, diagonal bool) []gridgraph.Coord {
	var open [4]bool
	for i, d := range cardinals {
		n := c.Add(d)
		if g.IsOpen(n) {
			buf = append(buf, n)
			open[i] = true
		}
	}
	if !diagonal {
		return buf
	}
	for i, d := range diagonals {
		if !open[i] && !open[(i+1)%4] {
			continue
		}
		n := c.Add(d)
		if g.IsOpen(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// Heuristic returns the admissible step lower bound from a to b:
// Manhattan distance, or the octile bound dx+dy-min(dx,dy) with diagonals.
func Heuristic(a, b gridgraph.Coord, diagonal bool) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if diagonal {
		return dx + dy - min(dx, dy)
	}
	return dx + dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
