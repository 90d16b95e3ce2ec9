// Package layout reads and writes grid layouts as YAML documents.
//
// A layout describes a grid either as ASCII rows (the gridgraph symbol set)
// or by its dimensions, plus rectangular walls and up to two endpoints:
//
//	name: corridor
//	diagonal: true
//	width: 10
//	height: 6
//	walls:
//	  - {x: 4, y: 0, w: 1, h: 5}
//	endpoints:
//	  - {x: 0, y: 0}
//	  - {x: 9, y: 5}
//
// Walls are rasterised through an R-tree: every cell is classified by an
// intersection query against the wall rectangles.
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Default dimensions of a layout that specifies neither rows nor size.
const (
	DefaultWidth  = 30
	DefaultHeight = 20
)

// Sentinel errors for layout validation.
var (
	// ErrBadDimensions indicates negative dimensions or a size that
	// contradicts the ASCII rows.
	ErrBadDimensions = errors.New("layout: invalid grid dimensions")
	// ErrWallOutOfBounds indicates an empty wall or one leaving the grid.
	ErrWallOutOfBounds = errors.New("layout: wall outside grid")
	// ErrEndpointOutOfBounds indicates an endpoint outside the grid.
	ErrEndpointOutOfBounds = errors.New("layout: endpoint outside grid")
	// ErrEndpointInWall indicates an endpoint on an obstacle cell.
	ErrEndpointInWall = errors.New("layout: endpoint inside wall")
	// ErrTooManyEndpoints indicates more than two endpoints overall.
	ErrTooManyEndpoints = errors.New("layout: more than two endpoints")
)

// Point is a cell position in a layout file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Rect is a block of obstacle cells with top-left corner (X,Y).
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Layout is the YAML document describing one grid.
type Layout struct {
	Name      string   `yaml:"name,omitempty"`
	Diagonal  bool     `yaml:"diagonal"`
	Width     int      `yaml:"width,omitempty"`
	Height    int      `yaml:"height,omitempty"`
	Rows      []string `yaml:"rows,omitempty"`
	Walls     []Rect   `yaml:"walls,omitempty"`
	Endpoints []Point  `yaml:"endpoints,omitempty"`
}

// Parse decodes a YAML layout and fills in default dimensions.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	if len(l.Rows) == 0 {
		if l.Width == 0 {
			l.Width = DefaultWidth
		}
		if l.Height == 0 {
			l.Height = DefaultHeight
		}
	}
	return &l, nil
}

// LoadFile reads and parses the layout at path.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Parse(data)
}

// FromGrid captures g as a row-based layout. Path cells are not persisted.
func FromGrid(name string, g *gridgraph.Grid, diagonal bool) *Layout {
	clean := g.Clone()
	clean.ClearType(gridgraph.Path)
	return &Layout{
		Name:     name,
		Diagonal: diagonal,
		Width:    g.Width,
		Height:   g.Height,
		Rows:     clean.Lines(),
	}
}

// Marshal encodes l as YAML.
func (l *Layout) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("layout: marshal: %w", err)
	}
	return data, nil
}

// SaveFile writes l as YAML to path.
func (l *Layout) SaveFile(path string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("layout: write %s: %w", path, err)
	}
	return nil
}

// Grid builds the grid the layout describes:
//  1. base cells from Rows, or an empty Width×Height grid;
//  2. every cell covered by a wall becomes an Obstacle;
//  3. listed endpoints are painted last.
//
// Returns ErrBadDimensions, ErrWallOutOfBounds, ErrEndpointOutOfBounds,
// ErrEndpointInWall or ErrTooManyEndpoints, or a gridgraph parse error.
func (l *Layout) Grid() (*gridgraph.Grid, error) {
	g, err := l.baseGrid()
	if err != nil {
		return nil, err
	}

	var idx *wallIndex
	if len(l.Walls) > 0 {
		idx, err = newWallIndex(l.Walls, g)
		if err != nil {
			return nil, err
		}
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				c := gridgraph.C(x, y)
				if idx.covers(c) {
					_ = g.Set(c, gridgraph.Obstacle)
				}
			}
		}
	}

	for _, p := range l.Endpoints {
		c := gridgraph.C(p.X, p.Y)
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: (%v) in %dx%d grid", ErrEndpointOutOfBounds, c, g.Width, g.Height)
		}
		if idx != nil {
			if walls := idx.covering(c); len(walls) > 0 {
				return nil, fmt.Errorf("%w: (%v) covered by %+v", ErrEndpointInWall, c, walls[0])
			}
		}
		switch g.Type(c) {
		case gridgraph.Obstacle:
			return nil, fmt.Errorf("%w: (%v)", ErrEndpointInWall, c)
		case gridgraph.Endpoint:
			continue
		}
		_ = g.Set(c, gridgraph.Endpoint)
	}
	if n := g.Count(gridgraph.Endpoint); n > 2 {
		return nil, fmt.Errorf("%w: found %d", ErrTooManyEndpoints, n)
	}
	return g, nil
}

func (l *Layout) baseGrid() (*gridgraph.Grid, error) {
	if len(l.Rows) == 0 {
		if l.Width <= 0 || l.Height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, l.Width, l.Height)
		}
		return gridgraph.New(l.Width, l.Height)
	}
	g, err := gridgraph.FromRows(l.Rows)
	if err != nil {
		return nil, fmt.Errorf("layout: rows: %w", err)
	}
	if (l.Width != 0 && l.Width != g.Width) || (l.Height != 0 && l.Height != g.Height) {
		return nil, fmt.Errorf("%w: rows are %dx%d, header says %dx%d",
			ErrBadDimensions, g.Width, g.Height, l.Width, l.Height)
	}
	return g, nil
}
