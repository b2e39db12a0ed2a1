// Package search defines the State contract, Strategy identifiers,
// functional options, and sentinel errors for state-space search.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNoSolution is returned when a strategy exhausts its search space
	// without encountering an end state.
	ErrNoSolution = errors.New("search: no end state reachable from start state")

	// ErrNilState is returned when New receives a nil start State.
	ErrNilState = errors.New("search: start state is nil")

	// ErrUnknownStrategy is returned when Solve receives a Strategy value
	// it does not recognize.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrDepthRequired is returned when a depth-limited strategy is run
	// without WithDepth.
	ErrDepthRequired = errors.New("search: depth-limited strategy requires WithDepth")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// State is one immutable configuration of the problem being searched.
//
// Implementations must be pure values: Key, NextStates and IsEndState
// must depend only on the state's own fields, so that equal
// configurations always report equal keys, identical successors, and
// the same goal status regardless of how they were reached.
type State interface {
	// Key returns a stable identity string. Two States representing the
	// same configuration must return equal keys.
	Key() string

	// NextStates returns every State directly reachable in one
	// transition. The returned order is significant for the
	// deterministic strategies.
	NextStates() []State

	// IsEndState reports whether this State is a goal.
	IsEndState() bool
}

// Rated is an optional extension of State consumed only by PDFS.
// Higher AttractiveRate means closer to (or better than) a goal.
// States that do not implement Rated are treated as rate 0.
type Rated interface {
	State

	// AttractiveRate returns a desirability score for greedy ordering.
	AttractiveRate() float64
}

// Strategy selects the traversal algorithm run by Graph.Solve.
type Strategy int

const (
	// BFS is breadth-first search; returns a shortest path by transition count.
	BFS Strategy = iota
	// DFS is depth-first search in NextStates order.
	DFS
	// RDFS is depth-first search with successors shuffled per node.
	RDFS
	// DFSL is depth-limited depth-first search; requires WithDepth.
	DFSL
	// RDFSL is depth-limited depth-first search with shuffled successors.
	RDFSL
	// IDFSL is iterative deepening over DFSL.
	IDFSL
	// RIDFSL is iterative deepening over RDFSL.
	RIDFSL
	// PDFS is greedy depth-first search ordered by AttractiveRate.
	PDFS
)

// String returns the conventional short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case RDFS:
		return "RDFS"
	case DFSL:
		return "DFSL"
	case RDFSL:
		return "RDFSL"
	case IDFSL:
		return "IDFSL"
	case RIDFSL:
		return "RIDFSL"
	case PDFS:
		return "PDFS"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a short strategy name (as produced by String) back
// to its Strategy value. Returns ErrUnknownStrategy for anything else.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "BFS":
		return BFS, nil
	case "DFS":
		return DFS, nil
	case "RDFS":
		return RDFS, nil
	case "DFSL":
		return DFSL, nil
	case "RDFSL":
		return RDFSL, nil
	case "IDFSL":
		return IDFSL, nil
	case "RIDFSL":
		return RIDFSL, nil
	case "PDFS":
		return PDFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures optional behavior of Graph.Solve via functional
// arguments. An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*SolveOptions)

// SolveOptions holds configurable parameters for one Solve invocation.
type SolveOptions struct {
	// Depth is the transition budget for DFSL/RDFSL. A value of -1
	// means "not set"; the depth-limited strategies reject that with
	// ErrDepthRequired. Other strategies ignore Depth.
	Depth int

	// MaxDepth, if > 0, caps IDFSL/RIDFSL deepening so unsolvable
	// instances terminate with ErrNoSolution instead of deepening
	// forever. 0 means uncapped.
	MaxDepth int

	// Seed drives the RNG of the randomized strategies. Seed 0 selects
	// a fixed default seed, so results are reproducible by default.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultSolveOptions returns a SolveOptions with:
//   - no depth bound set (Depth = -1)
//   - uncapped iterative deepening (MaxDepth = 0)
//   - the default deterministic seed (Seed = 0)
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Depth:    -1,
		MaxDepth: 0,
		Seed:     0,
		err:      nil,
	}
}

// WithDepth sets the transition budget for DFSL/RDFSL.
//
//	d >= 0: explore at most d transitions from the start state
//	d < 0:  invalid option → ErrOptionViolation
func WithDepth(d int) Option {
	return func(o *SolveOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.Depth = d
	}
}

// WithMaxDepth caps IDFSL/RIDFSL deepening at d.
//
//	d > 0:  stop deepening beyond depth d and fail with ErrNoSolution
//	d == 0: explicit no cap
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *SolveOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSeed fixes the RNG seed for RDFS/RDFSL/RIDFSL. Seed 0 keeps the
// default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *SolveOptions) {
		o.Seed = seed
	}
}
