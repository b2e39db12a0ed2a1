// Package maze defines cell types, positions, and sentinel errors for
// the maze domain.
package maze

import "errors"

// Sentinel errors for maze construction and path projection.
var (
	// ErrBadDimensions indicates the maze has no rows or no columns.
	ErrBadDimensions = errors.New("maze: dimensions must be at least 1x1")
	// ErrExitIllegal indicates the exit lies outside the grid or inside a blocked cell.
	ErrExitIllegal = errors.New("maze: exit cannot be inside a block point, or outside maze dimensions")
	// ErrBlockIllegal indicates a blocked coordinate lies outside the grid.
	ErrBlockIllegal = errors.New("maze: block point outside maze dimensions")
	// ErrStartIllegal indicates the start lies outside the grid or inside a blocked cell.
	ErrStartIllegal = errors.New("maze: start cannot be inside a block point, or outside maze dimensions")
	// ErrForeignState indicates Positions received a State that is not a Maze.
	ErrForeignState = errors.New("maze: path contains a non-maze state")
)

// Cell is the content of one grid square.
type Cell int

const (
	// Pathway is an open cell the walker may stand on.
	Pathway Cell = iota
	// Block is an impassable cell.
	Block
	// Exit is the goal cell.
	Exit
)

// Pos is a grid coordinate: Row grows downward, Col rightward.
type Pos struct {
	Row int
	Col int
}

// neighborOffsets lists the orthogonal moves in the order successors
// are generated: up, left, right, down.
var neighborOffsets = [4]Pos{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
}

// grid is the immutable board shared by every Maze state of one
// problem instance. Built once by New, read-only afterwards.
type grid struct {
	cells [][]Cell
	exit  Pos
}

// inBounds reports whether p lies inside the grid.
func (g *grid) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < len(g.cells[0])
}

// legal reports whether p is a position the walker may occupy.
func (g *grid) legal(p Pos) bool {
	return g.inBounds(p) && g.cells[p.Row][p.Col] != Block
}
