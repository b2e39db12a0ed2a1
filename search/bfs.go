// Package search - breadth-first strategy.
package search

// queueItem pairs a frontier Node with its distance from the start.
type queueItem struct {
	node  *Node
	depth int
}

// bfsWalker encapsulates mutable BFS state for one Solve call.
type bfsWalker struct {
	queue   []queueItem
	visited map[string]bool
	parent  map[string]*Node // child key → parent node, set at first discovery
}

// solveBFS runs breadth-first search from the start Node.
//
// The visited set is monotonic and states are enqueued exactly once, so
// the walk terminates on any finite state space. Because the frontier
// is explored in non-decreasing depth, the parent link recorded at
// first discovery is on a shortest path, and reconstruction from those
// links yields a shortest path by transition count.
func (g *Graph) solveBFS() ([]State, error) {
	w := &bfsWalker{
		queue:   []queueItem{{node: g.start, depth: 0}},
		visited: map[string]bool{g.start.key: true},
		parent:  make(map[string]*Node),
	}

	return w.run()
}

// run processes the frontier until a goal is dequeued or the frontier
// empties, which means exhaustion → ErrNoSolution.
func (w *bfsWalker) run() ([]State, error) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.node.state.IsEndState() {
			return statesOf(w.pathTo(item.node)), nil
		}

		for _, arc := range item.node.Expand() {
			if w.visited[arc.key] {
				continue
			}
			w.visited[arc.key] = true
			w.parent[arc.key] = item.node
			w.queue = append(w.queue, queueItem{node: arc, depth: item.depth + 1})
		}
	}

	return nil, ErrNoSolution
}

// pathTo reconstructs start → goal by following parent links backwards,
// then reversing. The start Node is the only one without a parent entry.
func (w *bfsWalker) pathTo(goal *Node) []*Node {
	path := []*Node{goal}
	for {
		prev, ok := w.parent[path[len(path)-1].key]
		if !ok {
			break
		}
		path = append(path, prev)
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
