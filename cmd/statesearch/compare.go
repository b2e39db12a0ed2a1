package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/samyzaitoun/statesearch/search"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenario.yaml>",
	Short: "Run every applicable strategy and compare path lengths",
	Long: `Loads a YAML maze scenario and solves it with every applicable strategy
concurrently, each over its own independent search graph, then reports
the path length found by each. The depth-limited strategies are
included only when --depth is set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCompare(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "compare failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	compareCmd.Flags().IntVarP(&flagDepth, "depth", "d", -1,
		"depth bound; enables DFSL/RDFSL in the comparison")
	compareCmd.Flags().Int64Var(&flagSeed, "seed", 0,
		"seed for the randomized strategies (0 = default deterministic seed)")
	rootCmd.AddCommand(compareCmd)
}

// compareResult is one strategy's outcome.
type compareResult struct {
	strategy search.Strategy
	length   int
	err      error
}

func runCompare(scenarioPath string) error {
	m, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	strategies := []search.Strategy{
		search.BFS, search.DFS, search.RDFS, search.IDFSL, search.RIDFSL, search.PDFS,
	}
	if flagDepth >= 0 {
		strategies = append(strategies, search.DFSL, search.RDFSL)
	}

	// Each strategy gets its own Graph: Solve calls own their
	// bookkeeping, so the runs are fully independent.
	results := make([]compareResult, len(strategies))
	var eg errgroup.Group
	for i, strategy := range strategies {
		i, strategy := i, strategy
		eg.Go(func() error {
			g, err := search.New(m)
			if err != nil {
				return err
			}
			path, err := g.Solve(strategy, solveOptions()...)
			results[i] = compareResult{strategy: strategy, length: len(path), err: err}
			if err != nil && !errors.Is(err, search.ErrNoSolution) {
				return err
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if res.err != nil {
			fmt.Printf("%-7s no solution\n", res.strategy)
			continue
		}
		fmt.Printf("%-7s %d states (%d transitions)\n", res.strategy, res.length, res.length-1)
	}

	return nil
}
