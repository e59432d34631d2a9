package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vyper-hq/vast/pkg/cli"
	"vyper-hq/vast/pkg/fixture"
)

var verifyFlags struct {
	report  string
	context int
	color   bool
}

var verifyCmd = &cobra.Command{
	Use:   "verify FILE...",
	Short: "Check fixture documents for round-trip conformance",
	Long: `Decode every document, encode it again and compare the result with the
input in canonical form.

A document passes when the round trip reproduces it exactly. A document that
fails to decode is reported as an error. The command exits non-zero when any
document does not pass.

Examples:
  # Verify all fixtures
  vast verify testdata/*.json

  # JSON report for CI
  vast verify --report json testdata/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFlags.report, "report", "text", "report format: text, json")
	verifyCmd.Flags().IntVar(&verifyFlags.context, "context", 3, "unchanged lines shown around each difference")
	verifyCmd.Flags().BoolVar(&verifyFlags.color, "color", !color.NoColor, "colorize the report")
}

func runVerify(cmd *cobra.Command, args []string) error {
	report, err := cli.ParseOutputFormat(verifyFlags.report)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return cli.NewCommandError("verify", err)
	}
	defer func() {
		if err := a.close(); err != nil {
			a.logger.Warn("Telemetry not flushed", "error", err)
		}
	}()

	ctx := commandContext(cmd)
	opts := fixture.DiffOptions{Color: verifyFlags.color, Context: verifyFlags.context}
	results := make([]cli.FileResult, 0, len(args))
	for _, path := range args {
		results = append(results, verifyFile(ctx, a, path, opts))
	}

	var stdout io.Writer = os.Stdout
	if cmd != nil {
		stdout = cmd.OutOrStdout()
	}
	if err := cli.WriteResults(stdout, report, results, verifyFlags.color && report == cli.FormatText); err != nil {
		return err
	}

	summary := cli.Summarize(results)
	if !summary.OK() {
		return cli.NewCommandError("verify", fmt.Errorf("%d of %d documents did not pass",
			summary.Total-summary.Passed, summary.Total))
	}
	return nil
}

// verifyFile decodes and re-encodes one document and diffs the result
// against it.
func verifyFile(ctx context.Context, a *app, path string, opts fixture.DiffOptions) cli.FileResult {
	result := cli.FileResult{File: path, Status: cli.StatusError}

	doc, err := fixture.Load(path)
	if err != nil {
		result.Message = err.Error()
		return result
	}
	unit, err := a.pipeline.Decode(ctx, doc.ContractName, doc.AST, nil)
	if err != nil {
		result.Message = err.Error()
		return result
	}
	m, err := a.pipeline.Encode(ctx, unit)
	if err != nil {
		result.Message = err.Error()
		return result
	}

	diff, changed, err := fixture.Diff(doc.AST, m, opts)
	if err != nil {
		result.Message = err.Error()
		return result
	}
	if changed {
		result.Status = cli.StatusFail
		result.Message = "round trip changed the document"
		result.Diff = diff
		return result
	}

	a.logger.Debug("Document verified", "path", path)
	result.Status = cli.StatusPass
	return result
}
