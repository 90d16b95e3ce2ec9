package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates an ASCII symbol that maps to no CellType.
	ErrUnknownCell = errors.New("gridgraph: unknown cell symbol")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
