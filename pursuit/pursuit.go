package pursuit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samyzaitoun/statesearch/search"
)

// Sentinel errors for game construction.
var (
	// ErrBadDimensions indicates the board has no rows or no columns.
	ErrBadDimensions = errors.New("pursuit: dimensions must be at least 1x1")
	// ErrTargetIllegal indicates the target lies outside the grid or on a wall.
	ErrTargetIllegal = errors.New("pursuit: target cannot be on a wall, or outside board dimensions")
	// ErrWallIllegal indicates a wall coordinate lies outside the grid.
	ErrWallIllegal = errors.New("pursuit: wall outside board dimensions")
	// ErrAgentIllegal indicates the agent starts outside the grid, on a wall, or on a pursuer.
	ErrAgentIllegal = errors.New("pursuit: agent cannot start on a wall, a pursuer, or outside board dimensions")
	// ErrPursuerIllegal indicates a pursuer starts outside the grid or on a wall.
	ErrPursuerIllegal = errors.New("pursuit: pursuer cannot start on a wall, or outside board dimensions")
)

// Pos is a board coordinate: Row grows downward, Col rightward.
type Pos struct {
	Row int
	Col int
}

// moveOffsets lists the agent's moves in successor-generation order:
// up, left, right, down.
var moveOffsets = [4]Pos{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
}

// board is the immutable playing field shared by every Game state of
// one problem instance.
type board struct {
	rows   int
	cols   int
	walls  map[Pos]bool
	target Pos
}

// inBounds reports whether p lies inside the board.
func (b *board) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// passable reports whether p may be occupied by the agent or a pursuer.
func (b *board) passable(p Pos) bool {
	return b.inBounds(p) && !b.walls[p]
}

// Game is one configuration of the pursuit: the agent's position plus
// every pursuer's position over a shared board. It implements
// search.Rated.
type Game struct {
	agent    Pos
	pursuers []Pos
	b        *board
}

// New constructs a rows×cols pursuit game. The agent must reach target;
// pursuers respond to every agent move with one greedy step each.
func New(rows, cols int, target Pos, walls []Pos, agent Pos, pursuers []Pos) (Game, error) {
	if rows < 1 || cols < 1 {
		return Game{}, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}

	b := &board{rows: rows, cols: cols, walls: make(map[Pos]bool, len(walls)), target: target}
	for _, w := range walls {
		if !b.inBounds(w) {
			return Game{}, fmt.Errorf("%w: wall (%d,%d)", ErrWallIllegal, w.Row, w.Col)
		}
		b.walls[w] = true
	}
	if !b.passable(target) {
		return Game{}, fmt.Errorf("%w: target (%d,%d)", ErrTargetIllegal, target.Row, target.Col)
	}
	if !b.passable(agent) {
		return Game{}, fmt.Errorf("%w: agent (%d,%d)", ErrAgentIllegal, agent.Row, agent.Col)
	}
	for _, p := range pursuers {
		if !b.passable(p) {
			return Game{}, fmt.Errorf("%w: pursuer (%d,%d)", ErrPursuerIllegal, p.Row, p.Col)
		}
		if p == agent {
			return Game{}, fmt.Errorf("%w: agent (%d,%d) starts captured", ErrAgentIllegal, agent.Row, agent.Col)
		}
	}

	g := Game{agent: agent, pursuers: append([]Pos(nil), pursuers...), b: b}

	return g, nil
}

// Agent returns the agent's position.
func (g Game) Agent() Pos { return g.agent }

// Target returns the target position.
func (g Game) Target() Pos { return g.b.target }

// Pursuers returns a copy of the pursuer positions.
func (g Game) Pursuers() []Pos { return append([]Pos(nil), g.pursuers...) }

// Rows returns the number of board rows.
func (g Game) Rows() int { return g.b.rows }

// Cols returns the number of board columns.
func (g Game) Cols() int { return g.b.cols }

// IsWall reports whether p is a wall cell.
func (g Game) IsWall(p Pos) bool { return g.b.walls[p] }

// Key encodes the agent and every pursuer position. Pursuers are kept
// in their fixed slice order; they are distinct entities, so the order
// is part of the configuration.
func (g Game) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "a%d,%d", g.agent.Row, g.agent.Col)
	for _, p := range g.pursuers {
		fmt.Fprintf(&sb, "|%d,%d", p.Row, p.Col)
	}

	return sb.String()
}

// NextStates generates the agent's safe moves in fixed order (up, left,
// right, down). A move is dropped when it runs into a wall or a
// pursuer, or when the pursuers' greedy response would land on the
// agent. Reaching the target ends the game before any response.
func (g Game) NextStates() []search.State {
	next := make([]search.State, 0, len(moveOffsets))

	for _, off := range moveOffsets {
		p := Pos{Row: g.agent.Row + off.Row, Col: g.agent.Col + off.Col}
		if !g.b.passable(p) || g.occupied(p) {
			continue
		}

		if p == g.b.target {
			// Goal reached; pursuers get no response move.
			next = append(next, Game{agent: p, pursuers: g.pursuers, b: g.b})
			continue
		}

		responded := g.respond(p)
		if captured(p, responded) {
			continue
		}
		next = append(next, Game{agent: p, pursuers: responded, b: g.b})
	}

	return next
}

// IsEndState reports whether the agent stands on the target.
func (g Game) IsEndState() bool { return g.agent == g.b.target }

// AttractiveRate is 1/(1 + manhattan distance from agent to target).
// Pursuers are ignored: the heuristic stays admissible for ordering but
// greedy search must still backtrack out of ambushes.
func (g Game) AttractiveRate() float64 {
	return 1 / float64(1+manhattan(g.agent, g.b.target))
}

// occupied reports whether any pursuer currently stands on p.
func (g Game) occupied(p Pos) bool {
	for _, q := range g.pursuers {
		if q == p {
			return true
		}
	}

	return false
}

// respond computes the pursuers' deterministic reply to the agent
// standing on target cell `agent`: each pursuer takes one step that
// shrinks its manhattan distance, preferring the row axis, skipping
// walls, staying put when boxed in. Pursuers may share a cell.
func (g Game) respond(agent Pos) []Pos {
	out := make([]Pos, len(g.pursuers))
	for i, p := range g.pursuers {
		out[i] = chase(g.b, p, agent)
	}

	return out
}

// chase returns the next position of a pursuer at `from` hunting `prey`.
func chase(b *board, from, prey Pos) Pos {
	if from == prey {
		return from
	}

	// Row axis first.
	if from.Row != prey.Row {
		step := Pos{Row: from.Row + sign(prey.Row-from.Row), Col: from.Col}
		if b.passable(step) {
			return step
		}
	}
	if from.Col != prey.Col {
		step := Pos{Row: from.Row, Col: from.Col + sign(prey.Col-from.Col)}
		if b.passable(step) {
			return step
		}
	}

	return from
}

// captured reports whether any pursuer stands on the agent.
func captured(agent Pos, pursuers []Pos) bool {
	for _, p := range pursuers {
		if p == agent {
			return true
		}
	}

	return false
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func manhattan(a, b Pos) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
