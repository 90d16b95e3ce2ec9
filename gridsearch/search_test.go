package gridsearch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// mustGrid parses ASCII rows or fails the test.
func mustGrid(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	return g
}

// openGrid returns a w×h grid with endpoints at a and b and no obstacles.
func openGrid(t testing.TB, w, h int, a, b gridgraph.Coord) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(w, h)
	require.NoError(t, err)
	require.NoError(t, g.Set(a, gridgraph.Endpoint))
	require.NoError(t, g.Set(b, gridgraph.Endpoint))
	return g
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	res, err := gridsearch.Search(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, gridsearch.ErrNilGrid)
}

func TestSearch_EndpointCount(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"None", []string{"...", "..."}},
		{"One", []string{"E..", "..."}},
		{"Three", []string{"E.E", "..E"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := gridsearch.Search(mustGrid(t, tc.rows...))
			assert.Nil(t, res)
			assert.ErrorIs(t, err, gridsearch.ErrEndpointCount)
		})
	}
}

func TestSearch_LenientEndpoints_UsesFirstTwoInScanOrder(t *testing.T) {
	// Column scan: (0,0), (0,2), (3,0).
	g := mustGrid(t,
		"E..E",
		"....",
		"E...",
	)
	res, err := gridsearch.Search(g, gridsearch.WithLenientEndpoints())
	require.NoError(t, err)
	assert.Equal(t, gridgraph.C(0, 0), res.Start)
	assert.Equal(t, gridgraph.C(0, 2), res.Target)
	assert.True(t, res.Found())
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 1}}, res.Interior)

	// One endpoint is still an error, even when lenient.
	_, err = gridsearch.Search(mustGrid(t, "E.."), gridsearch.WithLenientEndpoints())
	assert.ErrorIs(t, err, gridsearch.ErrEndpointCount)
}

func TestSearch_NegativeMaxSteps(t *testing.T) {
	g := mustGrid(t, "E.E")
	_, err := gridsearch.Search(g, gridsearch.WithMaxSteps(-1))
	assert.ErrorIs(t, err, gridsearch.ErrOptionViolation)
}

func TestSearchBetween_InvalidEndpoints(t *testing.T) {
	g := mustGrid(t, ".#.", "...")

	_, err := gridsearch.SearchBetween(g, gridgraph.C(0, 0), gridgraph.C(3, 0))
	assert.ErrorIs(t, err, gridsearch.ErrOutOfBounds)

	_, err = gridsearch.SearchBetween(g, gridgraph.C(-1, 0), gridgraph.C(2, 0))
	assert.ErrorIs(t, err, gridsearch.ErrOutOfBounds)

	_, err = gridsearch.SearchBetween(g, gridgraph.C(1, 0), gridgraph.C(2, 1))
	assert.ErrorIs(t, err, gridsearch.ErrBlockedEndpoint)
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

func TestSearch_ThreeByThree_Cardinal(t *testing.T) {
	g := openGrid(t, 3, 3, gridgraph.C(0, 0), gridgraph.C(2, 2))

	res, err := gridsearch.Search(g)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, gridsearch.StatusFound, res.Status)
	// Strict relaxation keeps the first predecessor found, so the route runs
	// along the top row; the interior is reported target side first.
	assert.Equal(t, []gridgraph.Coord{{X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}}, res.Interior)
	assert.Len(t, res.Path(), 5)
	assert.Equal(t, 4, res.Cost)
	assert.False(t, res.Diagonal)
}

func TestSearch_ThreeByThree_Diagonal(t *testing.T) {
	g := openGrid(t, 3, 3, gridgraph.C(0, 0), gridgraph.C(2, 2))

	res, err := gridsearch.Search(g, gridsearch.WithDiagonal(true))
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 1}}, res.Interior)
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, res.Path())
	assert.Equal(t, 2, res.Cost)
}

func TestSearch_SolidWall_NoPath(t *testing.T) {
	g := mustGrid(t,
		"E.#..",
		"..#..",
		"..#.E",
	)
	for _, diag := range []bool{false, true} {
		res, err := gridsearch.Search(g, gridsearch.WithDiagonal(diag))
		require.NoError(t, err)
		assert.Equal(t, gridsearch.StatusNoPath, res.Status, "diagonal=%v", diag)
		assert.False(t, res.Found())
		assert.Empty(t, res.Interior)
		assert.Nil(t, res.Path())
	}
}

func TestSearch_EnclosedTarget_NoPath(t *testing.T) {
	g := mustGrid(t,
		"E....",
		".###.",
		".#E#.",
		".###.",
		".....",
	)
	for _, diag := range []bool{false, true} {
		res, err := gridsearch.Search(g, gridsearch.WithDiagonal(diag))
		require.NoError(t, err)
		assert.Equal(t, gridsearch.StatusNoPath, res.Status, "diagonal=%v", diag)
	}
}

func TestSearch_StartBoxedIn_FailsOnFirstStep(t *testing.T) {
	g := mustGrid(t,
		"E#.",
		"##.",
		"..E",
	)
	res, err := gridsearch.Search(g, gridsearch.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, gridsearch.StatusNoPath, res.Status)
	assert.Equal(t, 1, res.Settled)
}

func TestSearch_WallWithGap(t *testing.T) {
	g := mustGrid(t,
		"E.#..",
		"..#..",
		"....E",
	)
	res, err := gridsearch.Search(g)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 6, res.Cost)
	assert.Len(t, res.Interior, 5)
	assert.Contains(t, res.Interior, gridgraph.C(2, 2), "the only gap must be on the path")
}

// ------------------------------------------------------------------------
// 3. Adjacency and corner cutting
// ------------------------------------------------------------------------

func TestSearch_AdjacentEndpoints(t *testing.T) {
	cases := []struct {
		name     string
		rows     []string
		diagonal bool
		interior int
	}{
		{"Orthogonal", []string{"EE.", "..."}, false, 0},
		{"OrthogonalDiagonalMode", []string{"E..", "E.."}, true, 0},
		{"Diagonal", []string{"E.", ".E"}, true, 0},
		{"DiagonalCardinalMode", []string{"E.", ".E"}, false, 1},
		{"DiagonalOneSideOpen", []string{"E#", ".E"}, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := gridsearch.Search(mustGrid(t, tc.rows...), gridsearch.WithDiagonal(tc.diagonal))
			require.NoError(t, err)
			assert.True(t, res.Found())
			assert.Len(t, res.Interior, tc.interior)
		})
	}
}

func TestSearch_CornerCuttingGuard(t *testing.T) {
	// The two free cells touch only at a corner bounded by two obstacles.
	g := mustGrid(t,
		"E#",
		"#E",
	)
	res, err := gridsearch.Search(g, gridsearch.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, gridsearch.StatusNoPath, res.Status)

	// Same gap in a bigger grid forces a detour instead of a squeeze.
	g = mustGrid(t,
		"....",
		".E#.",
		".#E.",
		"....",
	)
	res, err = gridsearch.Search(g, gridsearch.WithDiagonal(true))
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 3, res.Cost)
	assertValidPath(t, g, res.Path(), true)
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// TestSearch_OpenGridLengths checks the closed-form interior lengths on
// obstacle-free grids: max(dx,dy)-1 with diagonals, dx+dy-1 without.
func TestSearch_OpenGridLengths(t *testing.T) {
	pairs := [][2]gridgraph.Coord{
		{{X: 0, Y: 0}, {X: 6, Y: 4}},
		{{X: 6, Y: 0}, {X: 0, Y: 4}},
		{{X: 3, Y: 2}, {X: 3, Y: 0}},
		{{X: 1, Y: 4}, {X: 5, Y: 1}},
		{{X: 0, Y: 3}, {X: 1, Y: 2}},
		{{X: 2, Y: 2}, {X: 6, Y: 2}},
	}
	for _, p := range pairs {
		dx, dy := abs(p[0].X-p[1].X), abs(p[0].Y-p[1].Y)
		for _, diag := range []bool{false, true} {
			t.Run(fmt.Sprintf("%v-%v/diag=%v", p[0], p[1], diag), func(t *testing.T) {
				g := openGrid(t, 7, 5, p[0], p[1])
				res, err := gridsearch.Search(g, gridsearch.WithDiagonal(diag))
				require.NoError(t, err)
				require.True(t, res.Found())
				want := dx + dy - 1
				if diag {
					want = max(dx, dy) - 1
				}
				assert.Len(t, res.Interior, want)
				assert.Equal(t, want+1, res.Cost)
			})
		}
	}
}

// TestSearch_Deterministic runs the same search twice on an unchanged grid.
func TestSearch_Deterministic(t *testing.T) {
	g := mustGrid(t,
		"E.........",
		"..####....",
		".....#....",
		"..#..#.##.",
		"..#......E",
	)
	for _, diag := range []bool{false, true} {
		first, err := gridsearch.Search(g, gridsearch.WithDiagonal(diag))
		require.NoError(t, err)
		second, err := gridsearch.Search(g, gridsearch.WithDiagonal(diag))
		require.NoError(t, err)
		assert.Equal(t, first.Interior, second.Interior)
		assert.Equal(t, first.Settled, second.Settled)
	}
}

// TestSearch_MatchesBreadthFirstOptimum cross-checks best-first costs against
// exact breadth-first distances on a handful of mazes.
func TestSearch_MatchesBreadthFirstOptimum(t *testing.T) {
	mazes := [][]string{
		{
			"E.#.......",
			".##.####..",
			"....#..#..",
			"###.#.##.#",
			"....#....E",
		},
		{
			"E...#.....",
			".##.#.###.",
			".#..#...#.",
			".#.####.#.",
			".#......#E",
		},
		{
			"E#........",
			".#.######.",
			".#.#....#.",
			".#.#.##.#.",
			"...#..#..E",
		},
	}
	for mi, rows := range mazes {
		for _, diag := range []bool{false, true} {
			g := mustGrid(t, rows...)
			res, err := gridsearch.Search(g, gridsearch.WithDiagonal(diag))
			require.NoError(t, err)

			dist, err := gridsearch.Distances(g, res.Start, diag)
			require.NoError(t, err)
			want := dist[g.Index(res.Target)]
			if want == gridsearch.Unreached {
				assert.Equal(t, gridsearch.StatusNoPath, res.Status, "maze %d diag=%v", mi, diag)
				continue
			}
			require.True(t, res.Found(), "maze %d diag=%v", mi, diag)
			assert.Equal(t, want, res.Cost, "maze %d diag=%v", mi, diag)
			assert.Len(t, res.Interior, want-1)
			assertValidPath(t, g, res.Path(), diag)
		}
	}
}

// assertValidPath checks that consecutive path cells are legal single moves.
func assertValidPath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Coord, diag bool) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.Contains(t, gridsearch.Neighbors(g, path[i-1], diag), path[i],
			"step %v -> %v is not a legal move", path[i-1], path[i])
	}
}

// TestSearch_StalePathCellsAreFree checks Path markings from a previous run
// do not change the result.
func TestSearch_StalePathCellsAreFree(t *testing.T) {
	clean := mustGrid(t, "E...", ".##.", "...E")
	stale := mustGrid(t, "E***", ".##*", "..*E")

	a, err := gridsearch.Search(clean)
	require.NoError(t, err)
	b, err := gridsearch.Search(stale)
	require.NoError(t, err)
	assert.Equal(t, a.Interior, b.Interior)
}

// TestSearch_DoesNotMutateGrid ensures the grid is only read.
func TestSearch_DoesNotMutateGrid(t *testing.T) {
	g := mustGrid(t, "E...", ".##.", "...E")
	before := g.String()
	_, err := gridsearch.Search(g, gridsearch.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, before, g.String())
}

// ------------------------------------------------------------------------
// 5. Trace, budget, cancellation and hooks
// ------------------------------------------------------------------------

func TestSearch_Trace(t *testing.T) {
	g := openGrid(t, 5, 1, gridgraph.C(0, 0), gridgraph.C(4, 0))
	res, err := gridsearch.Search(g)
	require.NoError(t, err)
	require.True(t, res.Found())

	d, ok := res.Trace.Distance(res.Start)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
	_, ok = res.Trace.BackPointer(res.Start)
	assert.False(t, ok, "start has no predecessor")

	for i, c := range res.Path() {
		d, ok := res.Trace.Distance(c)
		require.True(t, ok)
		assert.Equal(t, i, d)
	}
	prev, ok := res.Trace.BackPointer(gridgraph.C(4, 0))
	assert.True(t, ok)
	assert.Equal(t, gridgraph.C(3, 0), prev)

	_, ok = res.Trace.Distance(gridgraph.C(9, 9))
	assert.False(t, ok)
}

func TestSearch_MaxSteps_Incomplete(t *testing.T) {
	g := openGrid(t, 10, 1, gridgraph.C(0, 0), gridgraph.C(9, 0))

	res, err := gridsearch.Search(g, gridsearch.WithMaxSteps(3))
	require.NoError(t, err)
	assert.Equal(t, gridsearch.StatusIncomplete, res.Status)
	assert.False(t, res.Found())
	assert.Equal(t, 3, res.Settled)

	res, err = gridsearch.Search(g, gridsearch.WithMaxSteps(0))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

func TestSearch_ContextCancelled(t *testing.T) {
	g := openGrid(t, 4, 4, gridgraph.C(0, 0), gridgraph.C(3, 3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := gridsearch.Search(g, gridsearch.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_OnSettleHook(t *testing.T) {
	g := openGrid(t, 4, 1, gridgraph.C(0, 0), gridgraph.C(3, 0))
	var settled []gridgraph.Coord
	var dists []int
	res, err := gridsearch.Search(g, gridsearch.WithOnSettle(func(c gridgraph.Coord, d int) {
		settled = append(settled, c)
		dists = append(dists, d)
	}))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, settled)
	assert.Equal(t, []int{0, 1, 2}, dists)
	assert.Equal(t, len(settled), res.Settled)
}

func TestSearchBetween_SameCell(t *testing.T) {
	g := mustGrid(t, "...")
	res, err := gridsearch.SearchBetween(g, gridgraph.C(1, 0), gridgraph.C(1, 0))
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Empty(t, res.Interior)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}}, res.Path())
}

func TestSearchBetween_IgnoresEndpointMarks(t *testing.T) {
	g := mustGrid(t, "E...E")
	res, err := gridsearch.SearchBetween(g, gridgraph.C(1, 0), gridgraph.C(3, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{{X: 2, Y: 0}}, res.Interior)
}
