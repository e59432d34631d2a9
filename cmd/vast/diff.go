package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vyper-hq/vast/pkg/cli"
	"vyper-hq/vast/pkg/fixture"
)

// errDocumentsDiffer makes diff exit non-zero, like diff(1).
var errDocumentsDiffer = errors.New("documents differ")

var diffFlags struct {
	context int
	color   bool
}

var diffCmd = &cobra.Command{
	Use:   "diff A B",
	Short: "Show the differences between two documents",
	Long: `Compare two dict-form documents in canonical form and print a line diff.

Documents may be JSON or YAML in any combination; key order and number
formatting do not count as differences. Lines only in A are prefixed "-",
lines only in B "+". The command exits non-zero when the documents differ.

Examples:
  vast diff want.json got.json
  vast diff --context -1 want.yaml got.json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().IntVar(&diffFlags.context, "context", 3, "unchanged lines shown around each difference (negative shows all)")
	diffCmd.Flags().BoolVar(&diffFlags.color, "color", !color.NoColor, "colorize the diff")
}

func runDiff(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return cli.NewConfigError("args", "diff needs exactly two documents")
	}

	want, err := fixture.Load(args[0])
	if err != nil {
		return cli.NewCommandError("diff", err)
	}
	got, err := fixture.Load(args[1])
	if err != nil {
		return cli.NewCommandError("diff", err)
	}

	out, changed, err := fixture.Diff(want.Map(), got.Map(), fixture.DiffOptions{
		Color:   diffFlags.color,
		Context: diffFlags.context,
	})
	if err != nil {
		return cli.NewCommandError("diff", err)
	}
	if !changed {
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "--- %s\n+++ %s\n", args[0], args[1])
	fmt.Fprint(w, out)
	return errDocumentsDiffer
}
