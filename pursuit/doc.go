// Package pursuit models a multi-agent grid pursuit game as a
// searchable domain: an agent must walk to a target cell across a grid
// with walls while deterministic pursuers close in, one greedy step
// after each agent move.
//
// What:
//
//   - Game implements search.Rated: one configuration is the agent's
//     position plus every pursuer's position over a shared board.
//   - After the agent steps, each pursuer takes one step that shrinks
//     its manhattan distance to the agent, preferring the row axis;
//     walls it cannot cross, and it stays put when boxed in.
//   - Moves that end on a pursuer, or that the pursuers' response would
//     immediately capture, are not generated as successors. Reaching
//     the target ends the game before any response.
//
// The pursuers are part of the state, so the same agent cell reached
// with differently placed pursuers is a different configuration — the
// state space is the full product, and the engine handles it like any
// other domain.
//
// The heuristic for greedy search is 1/(1 + manhattan distance from
// agent to target); it ignores the pursuers entirely, which makes the
// domain a good stress test for PDFS backtracking.
//
// Errors:
//
//   - ErrBadDimensions  — fewer than one row or column.
//   - ErrTargetIllegal  — target outside the grid or on a wall.
//   - ErrWallIllegal    — a wall coordinate outside the grid.
//   - ErrAgentIllegal   — agent outside the grid, on a wall, or on a pursuer.
//   - ErrPursuerIllegal — a pursuer outside the grid or on a wall.
package pursuit
