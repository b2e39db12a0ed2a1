// Package maze models a rectangular grid maze as a searchable domain:
// a walker stands on one cell and may step to the four orthogonal
// neighbors, avoiding blocked cells, until it reaches the single exit.
//
// What:
//
//   - Maze implements search.Rated: each Maze value is one walker
//     position over a shared, immutable grid.
//   - New builds the grid from dimensions, an exit position, and a
//     blocked-cells map, validating every coordinate up front.
//   - Positions projects a solved path back onto grid coordinates.
//
// Successor order is fixed (up, left, right, down), so the
// deterministic strategies explore the maze reproducibly.
//
// The heuristic for greedy search is 1/(1 + manhattan distance to the
// exit): 1 on the exit itself, decaying with distance.
//
// Errors:
//
//   - ErrBadDimensions — fewer than one row or column.
//   - ErrExitIllegal   — exit outside the grid or inside a blocked cell.
//   - ErrBlockIllegal  — a blocked coordinate outside the grid.
//   - ErrStartIllegal  — start outside the grid or inside a blocked cell.
//   - ErrForeignState  — Positions applied to a non-maze path.
package maze
