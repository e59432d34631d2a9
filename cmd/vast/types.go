package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vyper-hq/vast/pkg/vyast/ast"
)

var typesFlags struct {
	fields bool
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List every node type",
	Long: `List the variant tag of every node type in the grammar, in sorted order.

With --fields, each tag is followed by its grammar fields in encoding order.
List fields are suffixed "[]" and nullable children "?".`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().BoolVar(&typesFlags.fields, "fields", false, "show the fields of each type")
}

func runTypes(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	tags := ast.Types()

	width := 0
	for _, tag := range tags {
		width = max(width, len(tag))
	}

	for _, tag := range tags {
		if !typesFlags.fields {
			fmt.Fprintln(w, tag)
			continue
		}
		n, _ := ast.New(tag)
		fmt.Fprintf(w, "%-*s  %s\n", width, tag, describeFields(n))
	}
	return nil
}

func describeFields(n ast.Node) string {
	fields := n.Fields()
	if len(fields) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		name := f.Name
		switch {
		case f.Kind == ast.ListField:
			name += "[]"
		case f.Kind == ast.ChildField && f.Nullable:
			name += "?"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}
