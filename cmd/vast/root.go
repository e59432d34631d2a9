package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	metricsOut string
)

var rootCmd = &cobra.Command{
	Use:   "vast",
	Short: "Vast - syntax tree annotation and fixture tooling",
	Long: `Vast runs the post-parse passes of the compiler front end over syntax
trees in their dict form and checks fixture documents.

It provides:
  - Node id assignment and source summaries for every node
  - Category resolution for struct and contract definitions
  - Folding of negated integer and decimal literals
  - Round-trip conformance checks and canonical diffs for fixtures`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "vast.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "write metrics in the prometheus text format to this file")
}
