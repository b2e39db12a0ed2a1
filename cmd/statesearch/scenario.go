package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samyzaitoun/statesearch/maze"
)

// position is the YAML shape of a grid coordinate.
type position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// scenario is the YAML shape of a maze problem:
//
//	rows: 5
//	cols: 5
//	start: {row: 0, col: 0}
//	exit:  {row: 4, col: 4}
//	blocks:
//	  1: [1, 2, 3]
//	  3: [0, 1]
type scenario struct {
	Rows   int           `yaml:"rows"`
	Cols   int           `yaml:"cols"`
	Start  position      `yaml:"start"`
	Exit   position      `yaml:"exit"`
	Blocks map[int][]int `yaml:"blocks"`
}

// loadScenario reads a YAML scenario file and builds the maze it
// describes. Coordinate validation is left to maze.New.
func loadScenario(path string) (maze.Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return maze.Maze{}, fmt.Errorf("failed to read scenario: %w", err)
	}

	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return maze.Maze{}, fmt.Errorf("failed to parse scenario: %w", err)
	}

	return maze.New(
		sc.Rows,
		sc.Cols,
		maze.Pos{Row: sc.Exit.Row, Col: sc.Exit.Col},
		sc.Blocks,
		maze.Pos{Row: sc.Start.Row, Col: sc.Start.Col},
	)
}
