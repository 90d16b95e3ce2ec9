// Package gridgraph models the rectangular cell grid that path searches run on.
//
// What:
//
//   - Grid holds Width×Height painted cells, each one of Empty, Obstacle,
//     Endpoint or Path.
//   - Coord is an immutable (X,Y) pair; Index/Coordinate map it to and from
//     the row-major linear index y*Width + x.
//   - CellsOfType enumerates cells column by column (x outer, y inner), the
//     order searches use to pick their start and target endpoints.
//   - FromRows/Lines convert to and from a compact ASCII form:
//
//     .  Empty      #  Obstacle
//     E  Endpoint   *  Path
//
// Why:
//
//   - The grid carries only persistent painted state. Per-search annotations
//     (distances, back-pointers) live in the search package and are discarded
//     with each run, so nothing stale survives on the grid.
//
// Complexity:
//
//   - Type, Set, Index, Coordinate, InBounds: O(1).
//   - CellsOfType, Count, Mask, ClearType, Clone: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrNonRectangular: ASCII rows have differing lengths.
//   - ErrUnknownCell: ASCII input contains an unknown symbol.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// A Grid is not safe for concurrent mutation; callers serialize writes.
package gridgraph
