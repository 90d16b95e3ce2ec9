// Package render draws grids and search results for people and for GIS tools:
// PNG snapshots via gg and GeoJSON feature collections via orb.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Palette used by the editor and by PNG snapshots.
var (
	ColorEmpty    = color.RGBA{255, 255, 255, 255}
	ColorObstacle = color.RGBA{0, 0, 0, 255}
	ColorEndpoint = color.RGBA{255, 0, 0, 255}
	ColorPath     = color.RGBA{255, 255, 0, 255}
	ColorGridLine = color.RGBA{0, 0, 0, 255}
)

// CellColor returns the fill color for a cell type.
func CellColor(t gridgraph.CellType) color.RGBA {
	switch t {
	case gridgraph.Obstacle:
		return ColorObstacle
	case gridgraph.Endpoint:
		return ColorEndpoint
	case gridgraph.Path:
		return ColorPath
	default:
		return ColorEmpty
	}
}

// Geometry fixes the pixel layout of a drawn grid.
type Geometry struct {
	CellSize int
	Padding  int
}

// DefaultGeometry matches the editor: 30px cells, 10px padding.
func DefaultGeometry() Geometry {
	return Geometry{CellSize: 30, Padding: 10}
}

// Size returns the image size needed for g.
func (geo Geometry) Size(g *gridgraph.Grid) (w, h int) {
	return g.Width*geo.CellSize + 2*geo.Padding, g.Height*geo.CellSize + 2*geo.Padding
}

// CellOrigin returns the top-left pixel of cell c.
func (geo Geometry) CellOrigin(c gridgraph.Coord) (x, y float64) {
	return float64(geo.Padding + c.X*geo.CellSize), float64(geo.Padding + c.Y*geo.CellSize)
}

// Validate reports a geometry that cannot be drawn or mapped back to cells.
func (geo Geometry) Validate() error {
	if geo.CellSize < 3 || geo.Padding < 0 {
		return fmt.Errorf("render: invalid geometry %+v", geo)
	}
	return nil
}

// CellAt maps a pixel position to the cell under it. The result may be
// out of bounds; callers check with Grid.InBounds. A geometry without a
// positive cell size maps every pixel to (-1,-1).
func (geo Geometry) CellAt(px, py int) gridgraph.Coord {
	if geo.CellSize <= 0 {
		return gridgraph.Coord{X: -1, Y: -1}
	}
	return gridgraph.Coord{X: floorDiv(px-geo.Padding, geo.CellSize), Y: floorDiv(py-geo.Padding, geo.CellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Draw paints g onto dc: filled cells inset by one pixel, then grid lines.
func Draw(dc *gg.Context, g *gridgraph.Grid, geo Geometry) {
	dc.SetColor(ColorEmpty)
	dc.Clear()

	cs := float64(geo.CellSize)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := gridgraph.C(x, y)
			left, top := geo.CellOrigin(c)
			dc.SetColor(CellColor(g.Type(c)))
			dc.DrawRectangle(left+1, top+1, cs-2, cs-2)
			dc.Fill()
		}
	}

	dc.SetColor(ColorGridLine)
	dc.SetLineWidth(1)
	pad := float64(geo.Padding)
	right := pad + float64(g.Width)*cs
	bottom := pad + float64(g.Height)*cs
	for x := 0; x <= g.Width; x++ {
		lx := pad + float64(x)*cs
		dc.DrawLine(lx, pad, lx, bottom)
	}
	for y := 0; y <= g.Height; y++ {
		ly := pad + float64(y)*cs
		dc.DrawLine(pad, ly, right, ly)
	}
	dc.Stroke()
}

// newContext draws g onto a fresh context sized for geo.
func newContext(g *gridgraph.Grid, geo Geometry) (*gg.Context, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	w, h := geo.Size(g)
	dc := gg.NewContext(w, h)
	Draw(dc, g, geo)
	return dc, nil
}

// Image renders g into a new RGBA image.
func Image(g *gridgraph.Grid, geo Geometry) (image.Image, error) {
	dc, err := newContext(g, geo)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG encodes the rendered grid as PNG to w.
func WritePNG(w io.Writer, g *gridgraph.Grid, geo Geometry) error {
	dc, err := newContext(g, geo)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the rendered grid to a PNG file.
func SavePNG(path string, g *gridgraph.Grid, geo Geometry) error {
	dc, err := newContext(g, geo)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
