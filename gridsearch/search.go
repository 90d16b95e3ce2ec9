package gridsearch

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search finds a shortest path between the two Endpoint cells of g.
// The first endpoint in column-major scan order (x outer, y inner) is the
// start, the second is the target.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. g must hold exactly two endpoints (ErrEndpointCount); with
//     WithLenientEndpoints, at least two.
//
// Stale Path cells from an earlier run are treated as free cells.
// "No path" is reported through Result.Status, never as an error.
func Search(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	endpoints := g.CellsOfType(gridgraph.Endpoint)
	n := len(endpoints)
	if n < 2 || (n > 2 && !cfg.LenientEndpoints) {
		return nil, fmt.Errorf("%w: found %d", ErrEndpointCount, n)
	}

	return run(g, endpoints[0], endpoints[1], cfg)
}

// SearchBetween runs the same expansion as Search between explicit cells,
// ignoring any Endpoint markings on the grid.
// Returns ErrOutOfBounds if either cell lies outside g and
// ErrBlockedEndpoint if either cell is an obstacle.
func SearchBetween(g *gridgraph.Grid, start, target gridgraph.Coord, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, c := range [2]gridgraph.Coord{start, target} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
		}
		if g.Type(c) == gridgraph.Obstacle {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	return run(g, start, target, cfg)
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *gridgraph.Grid
	opts     Options
	trace    *Trace
	frontier *frontier
	settled  mapset.Set[int]
	target   gridgraph.Coord
	buf      []gridgraph.Coord // neighbor scratch space
}

func run(g *gridgraph.Grid, start, target gridgraph.Coord, cfg Options) (*Result, error) {
	r := &runner{
		g:        g,
		opts:     cfg,
		trace:    newTrace(g.Width, g.Len()),
		frontier: newFrontier(),
		settled:  mapset.New[int](),
		target:   target,
		buf:      make([]gridgraph.Coord, 0, 8),
	}
	res := &Result{
		Start:    start,
		Target:   target,
		Diagonal: cfg.AllowDiagonal,
		Trace:    r.trace,
	}

	status, err := r.expand(start)
	if err != nil {
		return nil, err
	}
	res.Status = status
	res.Settled = r.settled.Size()
	if status == StatusFound {
		res.Cost = r.trace.dist[g.Index(target)]
		res.Interior = r.reconstruct(start)
	}
	return res, nil
}

// expand runs the best-first loop from start until the target becomes the
// current cell, the frontier empties, the step budget runs out or the
// context is cancelled.
func (r *runner) expand(start gridgraph.Coord) (Status, error) {
	g := r.g
	current := g.Index(start)
	targetIdx := g.Index(r.target)

	// 1) Start is at distance zero and is the only frontier member.
	r.trace.dist[current] = 0
	r.frontier.add(current)

	for current != targetIdx {
		// cancellation check (once per step)
		select {
		case <-r.opts.Ctx.Done():
			return 0, r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxSteps > 0 && r.settled.Size() >= r.opts.MaxSteps {
			return StatusIncomplete, nil
		}

		// 2) Relax every unsettled neighbor with unit cost. Strict "<" keeps
		//    the first predecessor found among equal-length routes.
		cc := g.Coordinate(current)
		candidate := r.trace.dist[current] + 1
		r.buf = appendNeighbors(r.buf[:0], g, cc, r.opts.AllowDiagonal)
		for _, nc := range r.buf {
			ni := g.Index(nc)
			if r.settled.Has(ni) {
				continue
			}
			r.frontier.add(ni)
			if candidate < r.trace.dist[ni] {
				r.trace.dist[ni] = candidate
				r.trace.prev[ni] = current
			}
		}

		// 3) Settle current.
		r.frontier.remove(current)
		r.settled.Put(current)
		r.opts.OnSettle(cc, r.trace.dist[current])

		// 4) Pick the frontier cell with the lowest distance + heuristic.
		next, ok := r.frontier.best(r.score)
		if !ok {
			return StatusNoPath, nil
		}
		current = next
	}

	return StatusFound, nil
}

// score is the best-first priority of frontier cell i.
func (r *runner) score(i int) int {
	return r.trace.dist[i] + Heuristic(r.g.Coordinate(i), r.target, r.opts.AllowDiagonal)
}

// reconstruct walks back-pointers from the target and collects every cell
// strictly between target and start, target side first.
func (r *runner) reconstruct(start gridgraph.Coord) []gridgraph.Coord {
	g := r.g
	startIdx := g.Index(start)
	interior := make([]gridgraph.Coord, 0, r.trace.dist[g.Index(r.target)])
	for at := r.trace.prev[g.Index(r.target)]; at >= 0 && at != startIdx; at = r.trace.prev[at] {
		interior = append(interior, g.Coordinate(at))
	}
	return interior
}
