package gridsearch

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Regions finds all contiguous regions of open (non-obstacle) cells under the
// same movement rule Search uses, including the corner-cutting guard.
// Returns a slice of regions; each region is a slice of row-major cell
// indices in discovery order. Regions are discovered in row-major order of
// their first cell.
//
// Two endpoints are connected by some path iff they share a region.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for seen flags and output.
func Regions(g *gridgraph.Grid, diagonal bool) [][]int {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.Len())
	var regions [][]int
	buf := make([]gridgraph.Coord, 0, 8)

	for i0 := 0; i0 < g.Len(); i0++ {
		if seen[i0] || !g.IsOpen(g.Coordinate(i0)) {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			buf = appendNeighbors(buf[:0], g, g.Coordinate(u), diagonal)
			for _, v := range buf {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Distances computes exact step counts from `from` to every cell with a
// plain breadth-first sweep, using the same neighbor rule as Search.
// Unreachable cells and obstacles hold Unreached.
// Returns ErrNilGrid or ErrOutOfBounds for invalid input.
//
// Time and memory: O(W·H).
func Distances(g *gridgraph.Grid, from gridgraph.Coord, diagonal bool) ([]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}

	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = Unreached
	}
	src := g.Index(from)
	dist[src] = 0
	queue := []int{src}
	buf := make([]gridgraph.Coord, 0, 8)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		buf = appendNeighbors(buf[:0], g, g.Coordinate(u), diagonal)
		for _, v := range buf {
			vi := g.Index(v)
			if dist[vi] == Unreached {
				dist[vi] = dist[u] + 1
				queue = append(queue, vi)
			}
		}
	}
	return dist, nil
}
