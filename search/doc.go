// Package search implements generic state-space search: given a start
// State, it finds an ordered path of States ending in a goal, using one
// of eight interchangeable traversal strategies.
//
// What:
//
//   - State is the only contract a problem domain must satisfy:
//     Key (stable identity), NextStates (successors), IsEndState (goal test).
//   - Rated is an optional extension providing AttractiveRate, consumed
//     only by the greedy strategy (PDFS).
//   - Graph wraps a start State; Graph.Solve runs one strategy to
//     completion and returns the path start → goal, or ErrNoSolution.
//
// Strategies:
//
//   - BFS    — breadth-first; shortest path by transition count.
//   - DFS    — depth-first, successors in NextStates order.
//   - RDFS   — depth-first, successors shuffled per node (seeded).
//   - DFSL   — depth-limited DFS; requires WithDepth.
//   - RDFSL  — depth-limited DFS with shuffled successors.
//   - IDFSL  — iterative deepening over DFSL; shortest path, DFS memory.
//   - RIDFSL — iterative deepening over RDFSL.
//   - PDFS   — greedy DFS ordering successors by AttractiveRate descending;
//     ties keep NextStates order. Heuristic only, no optimality guarantee.
//
// Visited-set discipline (correctness-critical):
//
//   - BFS, DFS, RDFS, PDFS use a monotonic visited set: a state, once
//     explored, is never re-attempted within the same Solve call.
//   - DFSL and RDFSL use a path-scoped visited set: a state is unmarked
//     when its subtree is exhausted, so a different route may re-attempt
//     it within the depth budget. A monotonic set here would wrongly
//     reject states reachable by a shorter alternate path.
//
// Complexity:
//
//   - Time:  O(V + E) for the unbounded strategies (V = reachable states,
//     E = transitions), O(b^d) for depth-limited search with branching
//     factor b and bound d.
//   - Memory: O(V) for BFS and the monotonic visited sets, O(d) for the
//     recursion path of the depth-limited family.
//
// Options:
//
//   - WithDepth(d)    — depth bound, mandatory for DFSL/RDFSL.
//   - WithMaxDepth(d) — optional cap on IDFSL/RIDFSL deepening.
//   - WithSeed(s)     — deterministic seed for the randomized strategies.
//
// Errors:
//
//   - ErrNoSolution      — search space exhausted without a goal.
//   - ErrNilState        — nil start State passed to New.
//   - ErrUnknownStrategy — Solve called with an unrecognized Strategy.
//   - ErrDepthRequired   — DFSL/RDFSL without WithDepth.
//   - ErrOptionViolation — invalid option value (e.g. negative depth).
//
// Every Solve call owns its bookkeeping; independent searches may run
// concurrently as long as the State implementations are read-safe.
// A single Solve call runs synchronously on the calling goroutine with
// no cancellation point: bounding runaway searches is the caller's job
// via the depth-limited strategies.
package search
