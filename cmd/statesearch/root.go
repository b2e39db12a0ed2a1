package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statesearch",
	Short: "statesearch solves YAML-described maze scenarios with pluggable search strategies",
	Long: `statesearch loads a maze scenario from a YAML file and finds a path from
the start cell to the exit using one of eight traversal strategies
(BFS, DFS, RDFS, DFSL, RDFSL, IDFSL, RIDFSL, PDFS).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
