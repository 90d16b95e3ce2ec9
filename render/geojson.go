package render

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// Feature "kind" property values.
const (
	KindPath     = "path"
	KindEndpoint = "endpoint"
	KindObstacle = "obstacle"
)

// FeatureCollection describes g and an optional search result in grid units
// (one unit per cell, y pointing down):
//   - the path as a LineString through cell centres, when res found one;
//   - each endpoint as a Point at its cell centre;
//   - each obstacle as a unit square Polygon.
//
// The path feature carries "cost", "diagonal" and "status" properties.
func FeatureCollection(g *gridgraph.Grid, res *gridsearch.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if res != nil && res.Found() {
		path := res.Path()
		line := make(orb.LineString, 0, len(path))
		for _, c := range path {
			line = append(line, centre(c))
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = KindPath
		f.Properties["cost"] = res.Cost
		f.Properties["diagonal"] = res.Diagonal
		f.Properties["status"] = res.Status.String()
		fc.Append(f)
	}

	for _, c := range g.CellsOfType(gridgraph.Endpoint) {
		f := geojson.NewFeature(centre(c))
		f.Properties["kind"] = KindEndpoint
		fc.Append(f)
	}

	for _, c := range g.CellsOfType(gridgraph.Obstacle) {
		f := geojson.NewFeature(square(c))
		f.Properties["kind"] = KindObstacle
		fc.Append(f)
	}

	return fc
}

// GeoJSON encodes FeatureCollection(g, res).
func GeoJSON(g *gridgraph.Grid, res *gridsearch.Result) ([]byte, error) {
	data, err := FeatureCollection(g, res).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("render: geojson: %w", err)
	}
	return data, nil
}

func centre(c gridgraph.Coord) orb.Point {
	return orb.Point{float64(c.X) + 0.5, float64(c.Y) + 0.5}
}

// square is the closed ring around cell c.
func square(c gridgraph.Coord) orb.Polygon {
	x, y := float64(c.X), float64(c.Y)
	return orb.Polygon{orb.Ring{
		{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y},
	}}
}
