/*
Package cli provides command-line helpers used by the vast command.

Result Reporting:

Commands that check many files report one FileResult per file, as text or
as JSON for CI:

	results := []cli.FileResult{{File: "a.json", Status: cli.StatusPass}}
	if err := cli.WriteResults(os.Stdout, cli.FormatText, results, true); err != nil {
		return err
	}

Signal Handling:

For long-running commands such as --watch:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
