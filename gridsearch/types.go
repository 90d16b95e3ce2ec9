// Package gridsearch defines options, sentinel errors and result types
// for the best-first grid path search.
package gridsearch

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search and SearchBetween.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("gridsearch: grid is nil")

	// ErrEndpointCount indicates the grid does not hold exactly two endpoints
	// (or fewer than two under WithLenientEndpoints).
	ErrEndpointCount = errors.New("gridsearch: grid must contain exactly two endpoints")

	// ErrOutOfBounds indicates an explicit endpoint outside the grid.
	ErrOutOfBounds = errors.New("gridsearch: endpoint out of bounds")

	// ErrBlockedEndpoint indicates an explicit endpoint placed on an obstacle.
	ErrBlockedEndpoint = errors.New("gridsearch: endpoint is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridsearch: invalid option supplied")
)

// Unreached is the distance of a cell no path has reached yet.
const Unreached = math.MaxInt

// Status classifies how a search ended.
type Status int

const (
	// StatusFound means the target was settled and a path reconstructed.
	StatusFound Status = iota
	// StatusNoPath means the frontier ran dry before reaching the target.
	StatusNoPath
	// StatusIncomplete means the step budget ran out first.
	StatusIncomplete
)

// String returns a short name for s.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no path"
	case StatusIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion step.
	Ctx context.Context

	// AllowDiagonal enables the four diagonal moves.
	AllowDiagonal bool

	// MaxSteps, if > 0, caps the number of settled cells. Exhausting it
	// yields StatusIncomplete. 0 disables the cap.
	MaxSteps int

	// LenientEndpoints picks the first two endpoints in scan order when
	// the grid holds more than two, instead of failing.
	LenientEndpoints bool

	// OnSettle is called each time a cell is settled with its final distance.
	OnSettle func(c gridgraph.Coord, dist int)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - cardinal moves only
//   - no step budget
//   - strict endpoint count
//   - no-op OnSettle hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnSettle: func(gridgraph.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiagonal toggles diagonal movement.
func WithDiagonal(allow bool) Option {
	return func(o *Options) {
		o.AllowDiagonal = allow
	}
}

// WithMaxSteps limits the number of cells settled before giving up.
//
//	n > 0: limit to n settled cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLenientEndpoints accepts grids with more than two endpoints and uses
// the first two in column-major scan order.
func WithLenientEndpoints() Option {
	return func(o *Options) {
		o.LenientEndpoints = true
	}
}

// WithOnSettle registers a callback run as each cell is settled.
func WithOnSettle(fn func(c gridgraph.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Trace is the per-run annotation arena: one distance and one back-pointer
// per cell, indexed by the grid's linear index. A Trace belongs to exactly
// one search and is never reset or reused.
type Trace struct {
	width int
	dist  []int
	prev  []int // -1 for none
}

// newTrace allocates a trace with every distance Unreached and no back-pointers.
func newTrace(width, n int) *Trace {
	t := &Trace{width: width, dist: make([]int, n), prev: make([]int, n)}
	for i := range t.dist {
		t.dist[i] = Unreached
		t.prev[i] = -1
	}
	return t
}

func (t *Trace) index(c gridgraph.Coord) (int, bool) {
	if c.X < 0 || c.Y < 0 || c.X >= t.width {
		return 0, false
	}
	i := c.Y*t.width + c.X
	return i, i < len(t.dist)
}

// Distance returns the best known step count from start to c and whether
// c was reached at all.
func (t *Trace) Distance(c gridgraph.Coord) (int, bool) {
	i, ok := t.index(c)
	if !ok || t.dist[i] == Unreached {
		return Unreached, false
	}
	return t.dist[i], true
}

// BackPointer returns the predecessor of c on its best known path.
func (t *Trace) BackPointer(c gridgraph.Coord) (gridgraph.Coord, bool) {
	i, ok := t.index(c)
	if !ok || t.prev[i] < 0 {
		return gridgraph.Coord{}, false
	}
	p := t.prev[i]
	return gridgraph.Coord{X: p % t.width, Y: p / t.width}, true
}

// Result is the outcome of one search.
//   - Interior: strict interior path cells, ordered target → start.
//     Empty on failure and when the endpoints are adjacent.
//   - Cost: steps from Start to Target when found.
//   - Settled: cells settled during expansion.
type Result struct {
	Status   Status
	Start    gridgraph.Coord
	Target   gridgraph.Coord
	Interior []gridgraph.Coord
	Cost     int
	Settled  int
	Diagonal bool
	Trace    *Trace
}

// Found reports whether a path was found.
func (r *Result) Found() bool {
	return r.Status == StatusFound
}

// Path returns the full path Start → Target inclusive, or nil if none was found.
func (r *Result) Path() []gridgraph.Coord {
	if !r.Found() {
		return nil
	}
	path := make([]gridgraph.Coord, 0, len(r.Interior)+2)
	path = append(path, r.Start)
	for i := len(r.Interior) - 1; i >= 0; i-- {
		path = append(path, r.Interior[i])
	}
	if r.Target != r.Start {
		path = append(path, r.Target)
	}
	return path
}
