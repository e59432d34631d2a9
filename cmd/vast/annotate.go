package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vyper-hq/vast/pkg/cli"
	"vyper-hq/vast/pkg/fixture"
	"vyper-hq/vast/pkg/vyast/ast"
	"vyper-hq/vast/pkg/vyast/dict"
	"vyper-hq/vast/pkg/watch"
)

var annotateFlags struct {
	tree       string
	source     string
	categories string
	out        string
	format     string
	index      int
	name       string
	watch      bool
}

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate a raw syntax tree",
	Long: `Annotate a raw syntax tree and write the result in its dict form.

The tree is read as a dict-form document (JSON or YAML, by extension) and
annotated against the source text it was parsed from:
  - Every node gets a node id in pre-order, starting at 0
  - Every node gets a "start:length:index" source summary
  - Struct and contract definitions get their category
  - Negated integer and decimal literals are folded into one literal

Ids, summaries and categories already present in the input are replaced.

Examples:
  # Annotate and print to stdout
  vast annotate --tree raw.json --source token.vy

  # Write YAML with categories from a file
  vast annotate --tree raw.json --source token.vy --categories categories.yaml --out token.ast.yaml

  # Re-run whenever an input changes
  vast annotate --tree raw.json --source token.vy --out token.ast.json --watch`,
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVarP(&annotateFlags.tree, "tree", "t", "", "raw tree document (required)")
	annotateCmd.Flags().StringVarP(&annotateFlags.source, "source", "s", "", "source file the tree was parsed from (required)")
	annotateCmd.Flags().StringVar(&annotateFlags.categories, "categories", "", "YAML or JSON file mapping definition names to contract or struct")
	annotateCmd.Flags().StringVarP(&annotateFlags.out, "out", "o", "", "output file (default stdout)")
	annotateCmd.Flags().StringVarP(&annotateFlags.format, "format", "f", "", "output format: json, yaml (default from --out or config)")
	annotateCmd.Flags().IntVar(&annotateFlags.index, "index", -1, "source unit index (default from config)")
	annotateCmd.Flags().StringVar(&annotateFlags.name, "name", "", "contract name (default from the document or the tree file name)")
	annotateCmd.Flags().BoolVarP(&annotateFlags.watch, "watch", "w", false, "re-run when an input file changes")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if annotateFlags.tree == "" || annotateFlags.source == "" {
		return cli.NewConfigError("--tree/--source", "both --tree and --source must be specified")
	}

	a, err := newApp(cmd)
	if err != nil {
		return cli.NewCommandError("annotate", err)
	}
	defer func() {
		if err := a.close(); err != nil {
			a.logger.Warn("Telemetry not flushed", "error", err)
		}
	}()

	ctx := commandContext(cmd)
	stdout := io.Writer(os.Stdout)
	if cmd != nil {
		stdout = cmd.OutOrStdout()
	}

	if err := annotateOnce(ctx, a, stdout); err != nil {
		return cli.NewCommandError("annotate", err)
	}
	if !annotateFlags.watch {
		return nil
	}

	paths := []string{annotateFlags.tree, annotateFlags.source}
	if annotateFlags.categories != "" {
		paths = append(paths, annotateFlags.categories)
	}
	wcfg := watch.DefaultConfig()
	wcfg.Paths = paths
	watcher, err := watch.New(wcfg, a.logger)
	if err != nil {
		return cli.NewCommandError("annotate", err)
	}
	defer watcher.Stop()

	ctx, stop := cli.SetupSignalHandler(ctx)
	defer stop()

	return watcher.Watch(ctx, func(path string) error {
		a.logger.Info("Input changed, annotating again", "path", path)
		return annotateOnce(ctx, a, stdout)
	})
}

// annotateOnce reads the inputs named by the flags, runs the pipeline and
// writes the annotated document.
func annotateOnce(ctx context.Context, a *app, stdout io.Writer) error {
	text, err := os.ReadFile(annotateFlags.source)
	if err != nil {
		return fmt.Errorf("failed to read source %q: %w", annotateFlags.source, err)
	}
	index := a.cfg.Source.Index
	if annotateFlags.index >= 0 {
		index = annotateFlags.index
	}
	source := ast.NewSource(string(text), index)

	doc, err := fixture.Load(annotateFlags.tree)
	if err != nil {
		return err
	}
	categories, err := a.categories(annotateFlags.categories)
	if err != nil {
		return err
	}

	name := contractName(annotateFlags.name, doc.ContractName, annotateFlags.tree)
	unit, err := a.pipeline.Decode(ctx, name, doc.AST, source, dict.Raw())
	if err != nil {
		return cli.NewFileError(annotateFlags.tree, err)
	}
	unit.Categories = categories
	if _, err := a.pipeline.Run(ctx, unit); err != nil {
		return err
	}
	m, err := a.pipeline.Encode(ctx, unit)
	if err != nil {
		return err
	}

	format, err := outputFormat(annotateFlags.format, annotateFlags.out, a.cfg.Output.Format)
	if err != nil {
		return err
	}
	out := &fixture.Document{ContractName: name, AST: m}
	if annotateFlags.out == "" {
		return fixture.Write(stdout, out, format, a.cfg.Output.Indent)
	}
	if err := fixture.Save(annotateFlags.out, out, format, a.cfg.Output.Indent); err != nil {
		return err
	}
	a.logger.Info("Annotated tree written", "path", annotateFlags.out, "format", string(format))
	return nil
}

// contractName picks the first of the flag, the document's own name and the
// tree file's base name.
func contractName(flag, fromDoc, treePath string) string {
	if flag != "" {
		return flag
	}
	if fromDoc != "" {
		return fromDoc
	}
	base := filepath.Base(treePath)
	for ext := filepath.Ext(base); ext != ""; ext = filepath.Ext(base) {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// outputFormat resolves the --format flag, then the --out extension, then
// the configured default.
func outputFormat(flag, out, def string) (fixture.Format, error) {
	if flag != "" {
		f, err := fixture.ParseFormat(flag)
		if err != nil {
			return "", cli.NewConfigError("--format", err.Error())
		}
		return f, nil
	}
	fallback, err := fixture.ParseFormat(def)
	if err != nil {
		return "", cli.NewConfigError("output.format", err.Error())
	}
	if out == "" {
		return fallback, nil
	}
	return fixture.FormatFor(out, fallback), nil
}
