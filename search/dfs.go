// Package search - unbounded depth-first strategies (DFS, RDFS, PDFS).
package search

import (
	"math/rand"
	"sort"
)

// orderFunc reorders a node's successors in place before they are
// tried. A nil orderFunc keeps NextStates order (plain DFS).
type orderFunc func(arcs []*Node)

// shuffler returns an orderFunc applying a uniform Fisher–Yates shuffle
// driven by rng. The same rng is reused across the whole Solve call.
func shuffler(rng *rand.Rand) orderFunc {
	return func(arcs []*Node) {
		shuffleNodesInPlace(arcs, rng)
	}
}

// orderByRate sorts successors by AttractiveRate descending. The sort
// is stable, so equally rated successors keep their NextStates order.
func orderByRate(arcs []*Node) {
	sort.SliceStable(arcs, func(i, j int) bool {
		return arcs[i].rate() > arcs[j].rate()
	})
}

// dfsWalker encapsulates mutable state for one unbounded depth-first
// Solve call. The path doubles as the recursion stack and, on success,
// becomes the returned solution.
type dfsWalker struct {
	visited map[string]bool
	order   orderFunc
	path    []*Node
}

// solveDFS runs unbounded depth-first search from the start Node, with
// successors ordered by order (nil = NextStates order, shuffler = RDFS,
// orderByRate = PDFS).
func (g *Graph) solveDFS(order orderFunc) ([]State, error) {
	w := &dfsWalker{
		visited: map[string]bool{g.start.key: true},
		order:   order,
		path:    []*Node{g.start},
	}
	if !w.descend() {
		return nil, ErrNoSolution
	}

	return statesOf(w.path), nil
}

// descend explores the subtree under the last path entry, reporting
// whether a goal was reached.
//
// The visited set is monotonic: entries are never removed on backtrack,
// so each reachable state is attempted at most once per Solve call.
// That bounds the walk by the reachable state space and guarantees
// termination on cyclic graphs; since the search is unbounded, every
// reachable state is eventually tried and completeness is preserved.
func (w *dfsWalker) descend() bool {
	curr := w.path[len(w.path)-1]
	if curr.state.IsEndState() {
		return true
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
		if w.descend() {
			return true
		}
		// Dead end: backtrack the path but keep the visited mark.
		w.path = w.path[:len(w.path)-1]
	}

	return false
}
