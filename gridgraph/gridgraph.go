package gridgraph

import (
	"fmt"
	"strings"
)

// New returns a Width×Height grid with every cell Empty.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellType, width*height),
	}, nil
}

// FromRows builds a grid from ASCII rows, one string per row, using the
// symbols of CellType.Symbol. Trailing and leading whitespace is ignored.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownCell.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(strings.TrimSpace(rows[0]))
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, raw := range rows {
		row := strings.TrimSpace(raw)
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			t, err := ParseSymbol(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.cells[g.index(x, y)] = t
		}
	}
	return g, nil
}

// Dimensions returns (cols, rows).
func (g *Grid) Dimensions() (cols, rows int) {
	return g.Width, g.Height
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index maps a valid coordinate to its row-major linear index.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return g.index(c.X, c.Y)
}

// Coordinate converts a row‑major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// Type returns the cell type at c. c must be in bounds.
func (g *Grid) Type(c Coord) CellType {
	return g.cells[g.Index(c)]
}

// IsOpen reports whether c is in bounds and not an obstacle.
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] != Obstacle
}

// Set paints c with t. Returns ErrOutOfBounds for invalid coordinates.
func (g *Grid) Set(c Coord, t CellType) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	g.cells[g.Index(c)] = t
	return nil
}

// CellsOfType returns every cell of type t, scanning columns left to right
// and each column top to bottom (x outer, y inner).
func (g *Grid) CellsOfType(t CellType) []Coord {
	var out []Coord
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.cells[g.index(x, y)] == t {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Count returns the number of cells of type t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, ct := range g.cells {
		if ct == t {
			n++
		}
	}
	return n
}

// Mask returns a row-major slice marking cells of type t.
func (g *Grid) Mask(t CellType) []bool {
	mask := make([]bool, len(g.cells))
	for i, ct := range g.cells {
		mask[i] = ct == t
	}
	return mask
}

// ClearType repaints every cell of type t as Empty.
func (g *Grid) ClearType(t CellType) {
	for i, ct := range g.cells {
		if ct == t {
			g.cells[i] = Empty
		}
	}
}

// ApplyPath paints each in-bounds coordinate as Path. Endpoints and
// obstacles are left untouched.
func (g *Grid) ApplyPath(cells []Coord) {
	for _, c := range cells {
		if !g.InBounds(c) {
			continue
		}
		i := g.Index(c)
		if g.cells[i] == Empty || g.cells[i] == Path {
			g.cells[i] = Path
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]CellType, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Lines renders the grid as ASCII rows, the inverse of FromRows.
func (g *Grid) Lines() []string {
	lines := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			sb.WriteByte(g.cells[g.index(x, y)].Symbol())
		}
		lines[y] = sb.String()
	}
	return lines
}

// String joins Lines with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
