package layout

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// wallEntry wraps a wall for R-tree storage.
type wallEntry struct {
	wall Rect
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (w *wallEntry) Bounds() rtreego.Rect {
	return w.bbox
}

// wallIndex answers "which walls cover this cell" queries.
type wallIndex struct {
	tree *rtreego.Rtree
}

// newWallIndex validates walls against g and indexes them.
func newWallIndex(walls []Rect, g *gridgraph.Grid) (*wallIndex, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i, w := range walls {
		if w.W <= 0 || w.H <= 0 || w.X < 0 || w.Y < 0 || w.X+w.W > g.Width || w.Y+w.H > g.Height {
			return nil, fmt.Errorf("%w: wall %d %+v in %dx%d grid", ErrWallOutOfBounds, i, w, g.Width, g.Height)
		}
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(w.X), float64(w.Y)},
			[]float64{float64(w.W), float64(w.H)},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: wall %d: %v", ErrWallOutOfBounds, i, err)
		}
		tree.Insert(&wallEntry{wall: w, bbox: bbox})
	}
	return &wallIndex{tree: tree}, nil
}

// cellQuery is the square at the centre of cell c, half a cell wide, so it
// never touches the boundary of a neighboring wall.
func cellQuery(c gridgraph.Coord) rtreego.Rect {
	r, _ := rtreego.NewRect(
		rtreego.Point{float64(c.X) + 0.25, float64(c.Y) + 0.25},
		[]float64{0.5, 0.5},
	)
	return r
}

// covering returns the walls that contain cell c.
func (wi *wallIndex) covering(c gridgraph.Coord) []Rect {
	results := wi.tree.SearchIntersect(cellQuery(c))
	walls := make([]Rect, 0, len(results))
	for _, item := range results {
		walls = append(walls, item.(*wallEntry).wall)
	}
	return walls
}

// covers reports whether any wall contains cell c.
func (wi *wallIndex) covers(c gridgraph.Coord) bool {
	return len(wi.tree.SearchIntersect(cellQuery(c))) > 0
}
