// Package editor is the headless model behind the interactive grid editor.
//
// An Editor owns one grid and one active brush. Every edit re-runs the path
// search as soon as exactly two endpoints exist, so the grid always shows the
// current shortest path (or the "No path" status). The package has no UI
// dependency; cmd/gridpath-editor maps mouse and keyboard input onto it.
package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// StatusNoPath is shown when both endpoints are placed but not connected.
const StatusNoPath = "No path"

// ErrSizeMismatch is returned by Load when the stored grid has other dimensions.
var ErrSizeMismatch = errors.New("editor: stored grid size differs")

// Brush selects what a paint stroke writes into cells.
type Brush int

const (
	// BrushObstacle paints obstacles. It is the default brush.
	BrushObstacle Brush = iota
	// BrushEndpoint places endpoints, at most two at a time.
	BrushEndpoint
	// BrushErase resets cells to empty.
	BrushErase
)

// String returns the brush name shown in the editor's status line.
func (b Brush) String() string {
	switch b {
	case BrushObstacle:
		return "obstacle"
	case BrushEndpoint:
		return "endpoint"
	case BrushErase:
		return "erase"
	default:
		return fmt.Sprintf("Brush(%d)", int(b))
	}
}

// Editor holds the working grid plus the last search outcome.
// It is not safe for concurrent use.
type Editor struct {
	grid     *gridgraph.Grid
	brush    Brush
	diagonal bool

	stroking bool
	last     gridgraph.Coord

	result *gridsearch.Result
	status string
}

// New returns an editor over an empty width×height grid.
func New(width, height int) (*Editor, error) {
	g, err := gridgraph.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Editor{grid: g}, nil
}

// FromGrid returns an editor over a copy of g and computes its path.
func FromGrid(g *gridgraph.Grid, diagonal bool) *Editor {
	e := &Editor{grid: g.Clone(), diagonal: diagonal}
	e.recompute()
	return e
}

// Grid returns the working grid. Callers must not modify it.
func (e *Editor) Grid() *gridgraph.Grid { return e.grid }

// Brush returns the active brush.
func (e *Editor) Brush() Brush { return e.brush }

// SetBrush switches the active brush.
func (e *Editor) SetBrush(b Brush) { e.brush = b }

// Diagonal reports whether diagonal moves are enabled.
func (e *Editor) Diagonal() bool { return e.diagonal }

// Status returns StatusNoPath after a failed search and "" otherwise.
func (e *Editor) Status() string { return e.status }

// Result returns the last search result, or nil when fewer than two
// endpoints are placed.
func (e *Editor) Result() *gridsearch.Result { return e.result }

// Paint starts a stroke at c and applies the active brush to it.
// The stroke starts even when c is out of bounds, so a press in the margin
// paints once a drag enters the grid. The endpoint brush paints only while
// fewer than two endpoints exist. Returns whether the grid was touched.
func (e *Editor) Paint(c gridgraph.Coord) bool {
	e.stroking = true
	e.last = c
	if !e.grid.InBounds(c) {
		return false
	}

	var t gridgraph.CellType
	switch e.brush {
	case BrushEndpoint:
		if e.grid.Count(gridgraph.Endpoint) >= 2 {
			return false
		}
		t = gridgraph.Endpoint
	case BrushErase:
		t = gridgraph.Empty
	default:
		t = gridgraph.Obstacle
	}
	_ = e.grid.Set(c, t)
	e.recompute()
	return true
}

// Drag continues a stroke onto c. Repeated events for the cell painted last
// are ignored; without an active stroke Drag does nothing.
func (e *Editor) Drag(c gridgraph.Coord) bool {
	if !e.stroking || c == e.last {
		return false
	}
	return e.Paint(c)
}

// Release ends the current stroke.
func (e *Editor) Release() { e.stroking = false }

// SetDiagonal toggles diagonal moves and recomputes the path.
func (e *Editor) SetDiagonal(allow bool) {
	if e.diagonal == allow {
		return
	}
	e.diagonal = allow
	e.recompute()
}

// ClearAll replaces the grid with an empty one of the same size.
func (e *Editor) ClearAll() {
	g, _ := gridgraph.New(e.grid.Width, e.grid.Height)
	e.grid = g
	e.recompute()
}

// ClearPathAndEndpoints removes path and endpoint cells, keeping obstacles.
func (e *Editor) ClearPathAndEndpoints() {
	e.grid.ClearType(gridgraph.Path)
	e.grid.ClearType(gridgraph.Endpoint)
	e.recompute()
}

// recompute clears the stale path and, with exactly two endpoints, searches
// again and paints the new interior.
func (e *Editor) recompute() {
	e.grid.ClearType(gridgraph.Path)
	e.result = nil
	e.status = ""

	if e.grid.Count(gridgraph.Endpoint) != 2 {
		return
	}
	res, err := gridsearch.Search(e.grid, gridsearch.WithDiagonal(e.diagonal))
	if err != nil {
		log.Printf("[Editor] search failed: %v", err)
		e.status = StatusNoPath
		return
	}
	e.result = res
	if !res.Found() {
		e.status = StatusNoPath
		return
	}
	e.grid.ApplyPath(res.Interior)
}
