package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samyzaitoun/statesearch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statesearch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statesearch version %s\n", statesearch.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
