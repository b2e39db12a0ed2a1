package search

// Node is a disposable wrapper around exactly one State, used for
// identity-based bookkeeping during a single search. The State's key is
// computed once at construction and cached for the Node's lifetime.
//
// Nodes are ephemeral: the engine never retains one beyond a single
// Solve invocation, and expansion recomputes successor Nodes on demand
// rather than memoizing them.
type Node struct {
	state State
	key   string
}

// NewNode wraps s, caching its identity key.
func NewNode(s State) *Node {
	return &Node{state: s, key: s.Key()}
}

// State returns the wrapped State.
func (n *Node) State() State { return n.state }

// Key returns the cached identity key of the wrapped State.
// Two Nodes wrapping equal configurations report equal keys, even when
// produced independently by different branches of a search.
func (n *Node) Key() string { return n.key }

// Expand wraps each of the State's successors in a fresh Node,
// preserving NextStates order. Returns an empty slice when the State
// has no successors. The State itself is never mutated.
func (n *Node) Expand() []*Node {
	next := n.state.NextStates()
	arcs := make([]*Node, 0, len(next))
	for _, s := range next {
		arcs = append(arcs, NewNode(s))
	}

	return arcs
}

// rate returns the greedy-ordering score of the wrapped State: its
// AttractiveRate when the State implements Rated, 0 otherwise.
func (n *Node) rate() float64 {
	if r, ok := n.state.(Rated); ok {
		return r.AttractiveRate()
	}

	return 0
}

// statesOf projects a path of Nodes onto the States they wrap.
func statesOf(path []*Node) []State {
	states := make([]State, len(path))
	for i, n := range path {
		states[i] = n.state
	}

	return states
}
