package main

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/samyzaitoun/statesearch/maze"
)

// renderMaze draws the grid with the solved path overlaid:
// 'S' start, 'E' exit, '*' path cells, '█' blocks, '·' open cells.
// With color=false the glyphs are emitted unstyled.
func renderMaze(m maze.Maze, path []maze.Pos, color bool) string {
	p := termenv.ColorProfile()
	if !color {
		p = termenv.Ascii
	}

	onPath := make(map[maze.Pos]bool, len(path))
	for _, pos := range path {
		onPath[pos] = true
	}

	start := maze.Pos{}
	if len(path) > 0 {
		start = path[0]
	}

	var sb strings.Builder
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			pos := maze.Pos{Row: r, Col: c}
			sb.WriteString(glyph(p, m, pos, start, onPath))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// glyph picks and styles the character for one cell.
func glyph(p termenv.Profile, m maze.Maze, pos, start maze.Pos, onPath map[maze.Pos]bool) string {
	switch {
	case pos == start && len(onPath) > 0:
		return termenv.String("S").Foreground(p.Color("#22c55e")).Bold().String()
	case m.CellAt(pos) == maze.Exit:
		return termenv.String("E").Foreground(p.Color("#ef4444")).Bold().String()
	case onPath[pos]:
		return termenv.String("*").Foreground(p.Color("#eab308")).String()
	case m.CellAt(pos) == maze.Block:
		return termenv.String("█").Foreground(p.Color("#64748b")).String()
	default:
		return "·"
	}
}
