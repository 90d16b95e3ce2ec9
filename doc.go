// Package gridpath finds shortest paths on rectangular grids of obstacles
// and endpoints, and ships the tooling around it: layout files, renderers,
// fixture builders and an interactive editor.
//
// What is in the box:
//
//	gridgraph/    cell types, coordinates and the Grid container
//	gridsearch/   best-first path search with optional diagonal moves,
//	              plus breadth-first regions and distance sweeps
//	layout/       YAML layouts with rectangular walls (R-tree rasterised)
//	render/       PNG snapshots and GeoJSON export
//	builder/      seeded fixtures: scattered obstacles, serpentines, mazes
//	editor/       headless editor model with gdata persistence
//	cmd/          the gridpath CLI and the ebiten-based gridpath-editor
//
// Movement rules:
//   - Every move costs one step, diagonal moves included.
//   - A diagonal move is allowed only if at least one of the two cardinal
//     cells it passes is open, so paths never slip between two obstacles
//     that touch at a corner.
//
// Quick ASCII example:
//
//	E . # .        E * # .
//	. . # .   →    . * # .
//	. . . E        . * * E
//
// Search results never mutate the grid; callers paint Result.Interior with
// Grid.ApplyPath when they want to show it.
package gridpath
