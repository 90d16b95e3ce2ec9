// Package gridsearch finds a minimum-step path between the two endpoint cells
// of a gridgraph.Grid, walking around obstacles, or reports that none exists.
//
// What
//
//   - Best-first expansion: each step settles the frontier cell with the lowest
//     score = distance-from-start + heuristic-to-target, relaxing its unsettled
//     neighbors with unit cost.
//   - Heuristic: Manhattan distance for 4-directional movement; the octile bound
//     dx + dy - min(dx,dy) when diagonal moves are allowed.
//   - Neighbor order: E, S, W, N, then SE, SW, NW, NE. A diagonal move is only
//     taken when at least one of the two cardinal cells it passes between is
//     open (corner-cutting guard).
//   - Path reconstruction walks back-pointers from target to start; Result
//     reports only the interior cells, target first.
//
// Determinism
//
//	Equal scores resolve to the frontier cell that entered the frontier first.
//	Together with the fixed neighbor order this makes repeated searches over an
//	unchanged grid return identical paths. Among equal-length paths the one
//	returned depends on that traversal order, not on any coordinate ordering.
//
// Outcomes
//
//   - StatusFound:      target reached; Interior holds the path body.
//   - StatusNoPath:     frontier exhausted; an ordinary result, not an error.
//   - StatusIncomplete: the WithMaxSteps budget ran out before either.
//
// Errors are reserved for malformed input: ErrNilGrid, ErrEndpointCount,
// ErrOutOfBounds, ErrBlockedEndpoint, ErrOptionViolation, plus the context
// error when WithContext is cancelled.
//
// State
//
//	All distances and back-pointers live in a Trace allocated per call and
//	returned with the Result. Search never writes to the grid; applying the
//	path (gridgraph.Grid.ApplyPath) is left to the caller. Searches over the
//	same grid may run concurrently only while nothing mutates it.
//
// Complexity (N = W×H)
//
//   - Time:   O(N²) worst case; choosing the next cell scans the frontier.
//   - Memory: O(N) for the trace arena, frontier and settled sets.
//
// Example:
//
//	g, _ := gridgraph.FromRows([]string{"E.#", "..#", "..E"})
//	res, err := gridsearch.Search(g, gridsearch.WithDiagonal(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    g.ApplyPath(res.Interior)
//	}
package gridsearch
