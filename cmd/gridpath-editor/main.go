// cmd/gridpath-editor is an interactive grid editor that shows the shortest
// path between two endpoints while obstacles are drawn.
//
// Usage:
//
//	gridpath-editor [-config editor.yaml]
//
// Mouse: left button paints with the active brush, dragging keeps painting.
// Keys: O obstacle brush, E endpoint brush, X eraser, D toggle diagonal moves,
// C clear all, P clear path and endpoints, S save, L load.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

var configPath = flag.String("config", "", "editor YAML configuration")

// statusBarHeight is the strip below the grid holding the status line.
const statusBarHeight = 20

// Game adapts the editor model to ebiten.
type Game struct {
	editor *editor.Editor
	store  *editor.Store
	geo    render.Geometry
	title  string

	// message is a transient line from the last save or load.
	message string
}

// NewGame builds the editor from config.
func NewGame(config *editor.Config) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e, err := editor.New(config.Grid.Columns, config.Grid.Rows)
	if err != nil {
		return nil, fmt.Errorf("create editor: %w", err)
	}
	e.SetDiagonal(config.Grid.Diagonal)

	return &Game{
		editor: e,
		store:  editor.OpenStore(config.Storage.AppName, config.Storage.LayoutName),
		geo:    config.Geometry(),
		title:  config.Window.Title,
	}, nil
}

// Update handles mouse strokes and key commands.
func (g *Game) Update() error {
	g.handleMouse()
	g.handleKeys()
	return nil
}

func (g *Game) handleMouse() {
	cell := g.geo.CellAt(ebiten.CursorPosition())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.editor.Paint(cell)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.editor.Drag(cell)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.editor.Release()
	}
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.editor.SetBrush(editor.BrushObstacle)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.editor.SetBrush(editor.BrushEndpoint)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.editor.SetBrush(editor.BrushErase)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.editor.SetDiagonal(!g.editor.Diagonal())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.editor.ClearAll()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.editor.ClearPathAndEndpoints()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.message = "saved"
		if err := g.editor.Save(g.store); err != nil {
			log.Printf("[Game] save failed: %v", err)
			g.message = "save failed"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.message = "loaded"
		if err := g.editor.Load(g.store); err != nil {
			log.Printf("[Game] load failed: %v", err)
			g.message = "load failed"
		}
	}
}

// Draw paints every cell inset by one pixel over a black background, which
// leaves the grid lines, then the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.editor.Grid()
	w, h := g.geo.Size(grid)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h+statusBarHeight), render.ColorEmpty, false)

	pad := float32(g.geo.Padding)
	cs := float32(g.geo.CellSize)
	vector.DrawFilledRect(screen, pad, pad, cs*float32(grid.Width), cs*float32(grid.Height), render.ColorGridLine, false)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := gridgraph.C(x, y)
			left, top := g.geo.CellOrigin(c)
			vector.DrawFilledRect(screen, float32(left)+1, float32(top)+1, cs-2, cs-2,
				render.CellColor(grid.Type(c)), false)
		}
	}

	ebitenutil.DebugPrintAt(screen, g.statusLine(), g.geo.Padding, h)
}

func (g *Game) statusLine() string {
	line := fmt.Sprintf("brush: %s  diagonal: %t", g.editor.Brush(), g.editor.Diagonal())
	if res := g.editor.Result(); res != nil && res.Found() {
		line += fmt.Sprintf("  cost: %d", res.Cost)
	}
	if s := g.editor.Status(); s != "" {
		line += "  " + s
	}
	if g.message != "" {
		line += "  [" + g.message + "]"
	}
	return line
}

// Layout keeps the logical screen at the grid size plus the status bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.geo.Size(g.editor.Grid())
	return w, h + statusBarHeight
}

func main() {
	flag.Parse()

	config, err := editor.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Game] %v", err)
	}
	game, err := NewGame(config)
	if err != nil {
		log.Fatalf("[Game] %v", err)
	}
	if !game.store.Persistent() {
		log.Println("[Game] saved layouts will not outlive this session")
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.title)
	log.Printf("[Game] %dx%d grid, %dpx cells", config.Grid.Columns, config.Grid.Rows, config.Grid.CellSize)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
