package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samyzaitoun/statesearch/maze"
	"github.com/samyzaitoun/statesearch/search"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scenario.yaml>",
	Short: "Solve a maze scenario with one strategy",
	Long: `Loads a YAML maze scenario, runs the selected strategy, and renders the
solved maze with the path overlaid. Exits non-zero when no path exists.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "solve failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var (
	flagStrategy string
	flagDepth    int
	flagMaxDepth int
	flagSeed     int64
	flagNoColor  bool
)

func init() {
	solveCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "BFS",
		"strategy: BFS, DFS, RDFS, DFSL, RDFSL, IDFSL, RIDFSL or PDFS")
	solveCmd.Flags().IntVarP(&flagDepth, "depth", "d", -1,
		"depth bound for DFSL/RDFSL")
	solveCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0,
		"cap for IDFSL/RIDFSL deepening (0 = uncapped)")
	solveCmd.Flags().Int64Var(&flagSeed, "seed", 0,
		"seed for the randomized strategies (0 = default deterministic seed)")
	solveCmd.Flags().BoolVar(&flagNoColor, "no-color", false,
		"render without terminal colors")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(scenarioPath string) error {
	m, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	strategy, err := search.ParseStrategy(flagStrategy)
	if err != nil {
		return err
	}

	g, err := search.New(m)
	if err != nil {
		return err
	}

	path, err := g.Solve(strategy, solveOptions()...)
	if errors.Is(err, search.ErrNoSolution) {
		return fmt.Errorf("%s: %w", strategy, err)
	}
	if err != nil {
		return err
	}

	positions, err := maze.Positions(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s found a path of %d states (%d transitions):\n\n",
		strategy, len(positions), len(positions)-1)
	fmt.Print(renderMaze(m, positions, !flagNoColor))

	return nil
}

// solveOptions translates the command flags into engine options,
// passing only what was explicitly set.
func solveOptions() []search.Option {
	var opts []search.Option
	if flagDepth >= 0 {
		opts = append(opts, search.WithDepth(flagDepth))
	}
	if flagMaxDepth > 0 {
		opts = append(opts, search.WithMaxDepth(flagMaxDepth))
	}
	if flagSeed != 0 {
		opts = append(opts, search.WithSeed(flagSeed))
	}

	return opts
}
