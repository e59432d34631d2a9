package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// testCommand returns a command whose output goes to out and whose logs are
// discarded. Global flags are reset to defaults for the duration of the test.
func testCommand(t *testing.T, out *bytes.Buffer) *cobra.Command {
	t.Helper()

	origCfg, origVerbose, origMetrics := cfgFile, verbose, metricsOut
	origAnnotate, origVerify, origDiff, origTypes := annotateFlags, verifyFlags, diffFlags, typesFlags
	t.Cleanup(func() {
		cfgFile, verbose, metricsOut = origCfg, origVerbose, origMetrics
		annotateFlags, verifyFlags, diffFlags, typesFlags = origAnnotate, origVerify, origDiff, origTypes
	})

	cfgFile = ""
	verbose = false
	metricsOut = ""
	annotateFlags.index = -1
	verifyFlags.report = "text"
	verifyFlags.context = 3
	verifyFlags.color = false
	diffFlags.context = 3
	diffFlags.color = false

	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetContext(context.Background())
	return cmd
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
