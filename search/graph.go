// Package search - unified dispatcher for the traversal strategies.
package search

import "fmt"

// Graph owns the start Node of a search problem and dispatches Solve
// calls to the requested strategy.
//
// A Graph carries no mutable search state: every Solve call builds its
// own visited set, frontier, and path, so independent searches over the
// same Graph may run concurrently (provided the underlying State
// implementation is read-safe).
type Graph struct {
	start *Node
}

// New wraps start in a search Graph. Returns ErrNilState when start is nil.
func New(start State) (*Graph, error) {
	if start == nil {
		return nil, ErrNilState
	}

	return &Graph{start: NewNode(start)}, nil
}

// Start returns the start State the Graph was built with.
func (g *Graph) Start() State { return g.start.state }

// Solve runs the selected strategy to completion and returns the path
// of States from the start State to a goal, inclusive on both ends.
//
// Strategy parameters are supplied as functional Options: DFSL/RDFSL
// require WithDepth; IDFSL/RIDFSL honor WithMaxDepth; the randomized
// strategies honor WithSeed.
//
// Returns ErrNoSolution when the strategy exhausts its (possibly
// depth-bounded) search space without reaching a goal, ErrDepthRequired
// or ErrOptionViolation for parameter problems, and ErrUnknownStrategy
// for an unrecognized Strategy value.
func (g *Graph) Solve(strategy Strategy, opts ...Option) ([]State, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultSolveOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Route by strategy. Each branch seeds fresh bookkeeping, so no
	// state leaks between Solve calls.
	switch strategy {
	case BFS:
		return g.solveBFS()
	case DFS:
		return g.solveDFS(nil)
	case RDFS:
		return g.solveDFS(shuffler(rngFromSeed(o.Seed)))
	case DFSL:
		if o.Depth < 0 {
			return nil, ErrDepthRequired
		}

		return g.solveDFSL(o.Depth, nil)
	case RDFSL:
		if o.Depth < 0 {
			return nil, ErrDepthRequired
		}

		return g.solveDFSL(o.Depth, shuffler(rngFromSeed(o.Seed)))
	case IDFSL:
		return g.solveIDFSL(o.MaxDepth, nil)
	case RIDFSL:
		return g.solveIDFSL(o.MaxDepth, shuffler(rngFromSeed(o.Seed)))
	case PDFS:
		return g.solveDFS(orderByRate)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}
