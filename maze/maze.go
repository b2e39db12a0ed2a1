package maze

import (
	"fmt"

	"github.com/samyzaitoun/statesearch/search"
)

// Maze is one walker position over a shared immutable grid. It
// implements search.Rated; copies are cheap (a coordinate plus a
// pointer), and all state transitions produce new values.
type Maze struct {
	pos Pos
	g   *grid
}

// New constructs a rows×cols maze with a single exit, blocked cells
// given as row → columns (the original constructor's shape), and the
// walker standing on start.
//
// Validation order: dimensions, exit, blocks, start. Each failure is
// reported with the offending coordinate wrapped around the matching
// sentinel error.
func New(rows, cols int, exit Pos, blocks map[int][]int, start Pos) (Maze, error) {
	if rows < 1 || cols < 1 {
		return Maze{}, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	g := &grid{cells: cells, exit: exit}
	if !g.inBounds(exit) {
		return Maze{}, fmt.Errorf("%w: exit (%d,%d)", ErrExitIllegal, exit.Row, exit.Col)
	}
	cells[exit.Row][exit.Col] = Exit

	for row, colIdxs := range blocks {
		for _, col := range colIdxs {
			p := Pos{Row: row, Col: col}
			if !g.inBounds(p) {
				return Maze{}, fmt.Errorf("%w: block (%d,%d)", ErrBlockIllegal, row, col)
			}
			if p == exit {
				return Maze{}, fmt.Errorf("%w: exit (%d,%d) is blocked", ErrExitIllegal, exit.Row, exit.Col)
			}
			cells[row][col] = Block
		}
	}

	if !g.legal(start) {
		return Maze{}, fmt.Errorf("%w: start (%d,%d)", ErrStartIllegal, start.Row, start.Col)
	}

	return Maze{pos: start, g: g}, nil
}

// Pos returns the walker's current position.
func (m Maze) Pos() Pos { return m.pos }

// ExitPos returns the exit position.
func (m Maze) ExitPos() Pos { return m.g.exit }

// Rows returns the number of grid rows.
func (m Maze) Rows() int { return len(m.g.cells) }

// Cols returns the number of grid columns.
func (m Maze) Cols() int { return len(m.g.cells[0]) }

// CellAt returns the content of the grid square at p.
// Out-of-bounds positions report Block.
func (m Maze) CellAt(p Pos) Cell {
	if !m.g.inBounds(p) {
		return Block
	}

	return m.g.cells[p.Row][p.Col]
}

// Key identifies the state by the walker's position. The grid is
// shared and immutable within one problem instance, so the position
// alone distinguishes configurations.
func (m Maze) Key() string {
	return fmt.Sprintf("%d,%d", m.pos.Row, m.pos.Col)
}

// NextStates returns the legal orthogonal moves in fixed order:
// up, left, right, down.
func (m Maze) NextStates() []search.State {
	next := make([]search.State, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		p := Pos{Row: m.pos.Row + off.Row, Col: m.pos.Col + off.Col}
		if m.g.legal(p) {
			next = append(next, Maze{pos: p, g: m.g})
		}
	}

	return next
}

// IsEndState reports whether the walker stands on the exit.
func (m Maze) IsEndState() bool {
	return m.g.cells[m.pos.Row][m.pos.Col] == Exit
}

// AttractiveRate is 1/(1 + manhattan distance to the exit): 1 on the
// exit itself, decaying smoothly with distance.
func (m Maze) AttractiveRate() float64 {
	return 1 / float64(1+manhattan(m.pos, m.g.exit))
}

// Positions projects a solved path back onto grid coordinates.
// Returns ErrForeignState if any entry is not a Maze.
func Positions(path []search.State) ([]Pos, error) {
	out := make([]Pos, len(path))
	for i, s := range path {
		m, ok := s.(Maze)
		if !ok {
			return nil, fmt.Errorf("%w: index %d holds %T", ErrForeignState, i, s)
		}
		out[i] = m.pos
	}

	return out, nil
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
