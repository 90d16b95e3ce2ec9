// cmd/gridpath solves a YAML grid layout from the command line.
//
// Usage:
//
//	gridpath -layout maze.yaml [-diagonal auto|on|off] [-max-steps N]
//	         [-png out.png] [-geojson out.json] [-cell 30]
//
// The grid is printed with the path drawn in, followed by cost and status.
// Exit status is 0 when a path was found, 2 when none was, 1 on error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridpath/gridsearch"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/render"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	layoutPath string
	diagonal   string
	maxSteps   int
	pngPath    string
	geojson    string
	cellSize   int
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.layoutPath, "layout", "", "layout YAML file (required)")
	fs.StringVar(&o.diagonal, "diagonal", "auto", "diagonal moves: auto (from layout), on, off")
	fs.IntVar(&o.maxSteps, "max-steps", 0, "settle at most N cells, 0 for no limit")
	fs.StringVar(&o.pngPath, "png", "", "write a PNG snapshot to this file")
	fs.StringVar(&o.geojson, "geojson", "", "write a GeoJSON feature collection to this file")
	fs.IntVar(&o.cellSize, "cell", render.DefaultGeometry().CellSize, "PNG cell size in pixels")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.layoutPath == "" {
		return nil, errors.New("-layout is required")
	}
	switch o.diagonal {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("-diagonal must be auto, on or off, got %q", o.diagonal)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "gridpath: %v\n", err)
		}
		return exitError
	}

	l, err := layout.LoadFile(o.layoutPath)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	g, err := l.Grid()
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %s: %v\n", o.layoutPath, err)
		return exitError
	}

	diagonal := l.Diagonal
	switch o.diagonal {
	case "on":
		diagonal = true
	case "off":
		diagonal = false
	}

	res, err := gridsearch.Search(g,
		gridsearch.WithContext(ctx),
		gridsearch.WithDiagonal(diagonal),
		gridsearch.WithMaxSteps(o.maxSteps),
	)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	g.ApplyPath(res.Interior)

	fmt.Fprintln(stdout, g.String())
	if res.Found() {
		fmt.Fprintf(stdout, "cost: %d\n", res.Cost)
	}
	fmt.Fprintf(stdout, "status: %s (settled %d, diagonal %t)\n", res.Status, res.Settled, res.Diagonal)

	if o.pngPath != "" {
		geo := render.DefaultGeometry()
		geo.CellSize = o.cellSize
		if err := render.SavePNG(o.pngPath, g, geo); err != nil {
			fmt.Fprintf(stderr, "gridpath: %v\n", err)
			return exitError
		}
	}
	if o.geojson != "" {
		data, err := render.GeoJSON(g, res)
		if err != nil {
			fmt.Fprintf(stderr, "gridpath: %v\n", err)
			return exitError
		}
		if err := os.WriteFile(o.geojson, data, 0o644); err != nil {
			fmt.Fprintf(stderr, "gridpath: %v\n", err)
			return exitError
		}
	}

	if !res.Found() {
		return exitNoPath
	}
	return exitOK
}
