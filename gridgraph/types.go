// Package gridgraph defines the cell, coordinate and grid types
// shared by the search, layout, render and editor packages.
package gridgraph

import "fmt"

// CellType is the painted state of a single cell.
type CellType uint8

const (
	// Empty is a free, traversable cell.
	Empty CellType = iota
	// Obstacle can be neither entered nor passed through.
	Obstacle
	// Endpoint marks one of the two cells a path connects.
	Endpoint
	// Path marks an interior cell of the last applied path.
	Path
)

// cellSymbols maps each CellType to its ASCII symbol.
var cellSymbols = [...]byte{
	Empty:    '.',
	Obstacle: '#',
	Endpoint: 'E',
	Path:     '*',
}

// String returns a lower-case name for the cell type.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Endpoint:
		return "endpoint"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// Symbol returns the ASCII symbol used by FromRows and Lines.
func (t CellType) Symbol() byte {
	if int(t) < len(cellSymbols) {
		return cellSymbols[t]
	}
	return '?'
}

// ParseSymbol maps an ASCII symbol back to its CellType.
func ParseSymbol(b byte) (CellType, error) {
	for t, s := range cellSymbols {
		if s == b {
			return CellType(t), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, b)
}

// Coord identifies a cell by column X and row Y. Y grows downward.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String formats c as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Grid is a Width×Height rectangle of painted cells stored row-major.
type Grid struct {
	Width, Height int
	cells         []CellType
}
