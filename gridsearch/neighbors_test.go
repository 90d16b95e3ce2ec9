package gridsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

func TestNeighbors_Order(t *testing.T) {
	g := mustGrid(t, "...", "...", "...")
	center := gridgraph.C(1, 1)

	assert.Equal(t,
		[]gridgraph.Coord{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		gridsearch.Neighbors(g, center, false))

	assert.Equal(t,
		[]gridgraph.Coord{
			{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}, // E S W N
			{X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 0}, // SE SW NW NE
		},
		gridsearch.Neighbors(g, center, true))
}

func TestNeighbors_BoundsAndObstacles(t *testing.T) {
	g := mustGrid(t,
		".#.",
		"...",
	)
	// Corner cell: only in-bounds, non-obstacle cells qualify.
	assert.Equal(t,
		[]gridgraph.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}},
		gridsearch.Neighbors(g, gridgraph.C(0, 0), true))
}

// TestNeighbors_CornerCuttingGuard exercises each diagonal with both,
// one and none of its bounding cardinals open.
//
//	. # .
//	# . .
//	. . .
func TestNeighbors_CornerCuttingGuard(t *testing.T) {
	g := mustGrid(t,
		".#.",
		"#..",
		"...",
	)
	got := gridsearch.Neighbors(g, gridgraph.C(1, 1), true)
	want := []gridgraph.Coord{
		{X: 2, Y: 1}, {X: 1, Y: 2}, // E S
		{X: 2, Y: 2}, // SE: E and S open
		{X: 0, Y: 2}, // SW: S open
		{X: 2, Y: 0}, // NE: E open
	}
	assert.Equal(t, want, got)
	assert.NotContains(t, got, gridgraph.C(0, 0), "NW is bounded by two obstacles")
}

func TestHeuristic(t *testing.T) {
	cases := []struct {
		a, b     gridgraph.Coord
		cardinal int
		diagonal int
	}{
		{gridgraph.C(0, 0), gridgraph.C(0, 0), 0, 0},
		{gridgraph.C(0, 0), gridgraph.C(3, 1), 4, 3},
		{gridgraph.C(5, 5), gridgraph.C(2, 1), 7, 4},
		{gridgraph.C(2, 7), gridgraph.C(2, 1), 6, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.cardinal, gridsearch.Heuristic(tc.a, tc.b, false), "%v→%v", tc.a, tc.b)
		assert.Equal(t, tc.diagonal, gridsearch.Heuristic(tc.a, tc.b, true), "%v→%v", tc.a, tc.b)
		assert.Equal(t, gridsearch.Heuristic(tc.a, tc.b, true), gridsearch.Heuristic(tc.b, tc.a, true))
	}
}
