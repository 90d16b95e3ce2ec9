// Package builder assembles reproducible grid fixtures for tests, benchmarks
// and demos.
//
// Build creates an empty grid, resolves options, and runs constructors in
// order. Constructors compose, so obstacles and endpoints are layered:
//
//	g, err := builder.Build(30, 20,
//		[]builder.Option{builder.WithSeed(7), builder.WithDensity(0.25)},
//		builder.Scatter(), builder.Corners())
//
// Available constructors:
//   - Scatter:    independent random obstacles at the configured density.
//   - Serpentine: alternating wall columns forcing a winding route.
//   - Maze:       a perfect maze carved by randomized depth-first search.
//   - Endpoints:  two endpoints at given cells.
//   - Corners:    endpoints at the top-left and bottom-right cells.
//
// Guarantees:
//   - Determinism: equal dimensions, options, seed and constructor order
//     produce identical grids.
//   - Option constructors panic on meaningless input; Build and the
//     constructors never panic and return sentinel errors instead.
package builder
