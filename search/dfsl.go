// Package search - depth-limited strategies (DFSL, RDFSL) and the
// iterative-deepening drivers built on them (IDFSL, RIDFSL).
package search

import "errors"

// dflWalker encapsulates mutable state for one depth-limited Solve
// call. Unlike dfsWalker, its visited set is path-scoped.
type dflWalker struct {
	visited map[string]bool
	order   orderFunc
	path    []*Node
}

// solveDFSL runs depth-first search from the start Node with a budget
// of at most depth transitions.
func (g *Graph) solveDFSL(depth int, order orderFunc) ([]State, error) {
	w := &dflWalker{
		visited: map[string]bool{g.start.key: true},
		order:   order,
		path:    []*Node{g.start},
	}
	if !w.descend(depth) {
		return nil, ErrNoSolution
	}

	return statesOf(w.path), nil
}

// descend explores the subtree under the last path entry with remaining
// transitions left in the budget, reporting whether a goal was reached.
//
// The visited set is path-scoped: a successor is marked before the
// recursive call and unmarked once its subtree is exhausted. Under a
// depth bound this unmarking is required for correctness — a state out
// of budget along one route may still be within budget along a shorter
// route tried later in the same call, and a monotonic set would wrongly
// reject it. Termination follows from the bound itself: the recursion
// never exceeds depth `remaining`.
func (w *dflWalker) descend(remaining int) bool {
	curr := w.path[len(w.path)-1]
	if curr.state.IsEndState() {
		return true
	}
	if remaining <= 0 {
		// Budget exhausted below this node; do not expand further.
		return false
	}

	arcs := curr.Expand()
	if w.order != nil {
		w.order(arcs)
	}

	for _, arc := range arcs {
		if w.visited[arc.key] {
			continue
		}
		w.visited[arc.key] = true
		w.path = append(w.path, arc)
		if w.descend(remaining - 1) {
			return true
		}
		// Subtree exhausted: unmark so another route may retry this state.
		delete(w.visited, arc.key)
		w.path = w.path[:len(w.path)-1]
	}

	return false
}

// solveIDFSL re-runs depth-limited search at depth 0, 1, 2, …,
// returning the first success. A per-depth ErrNoSolution is the
// expected "deepen and retry" signal, not overall failure.
//
// The first depth to succeed is minimal, so the returned path is as
// short as BFS's while the walk itself only ever holds a single
// root-to-frontier path in memory. With maxDepth == 0 the deepening is
// uncapped and a genuinely unsolvable infinite state space will loop
// forever; callers who cannot rule that out should set WithMaxDepth.
func (g *Graph) solveIDFSL(maxDepth int, order orderFunc) ([]State, error) {
	for depth := 0; maxDepth == 0 || depth <= maxDepth; depth++ {
		path, err := g.solveDFSL(depth, order)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, ErrNoSolution) {
			return nil, err
		}
	}

	return nil, ErrNoSolution
}
