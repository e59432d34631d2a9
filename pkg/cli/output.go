package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is human readable output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output, for CI.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat parses a report format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", NewConfigError("--report", fmt.Sprintf("unknown report format %q (want text or json)", s))
	}
}

// Status is the outcome of checking one file.
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// FileResult is the outcome of checking one file.
type FileResult struct {
	File    string `json:"file"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Diff    string `json:"diff,omitempty"`
}

// Summary counts results by status.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Errors int `json:"errors"`
}

// OK reports whether every file passed.
func (s Summary) OK() bool {
	return s.Passed == s.Total
}

// Summarize counts results by status.
func Summarize(results []FileResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		default:
			s.Errors++
		}
	}
	return s
}

// Report is the JSON form of a results listing.
type Report struct {
	Results []FileResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// WriteResults writes results in the given format. Colors apply to text only.
func WriteResults(w io.Writer, format OutputFormat, results []FileResult, colored bool) error {
	summary := Summarize(results)
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Report{Results: results, Summary: summary})
	}

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	for _, c := range []*color.Color{pass, fail} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, r := range results {
		switch r.Status {
		case StatusPass:
			fmt.Fprintf(w, "%s %s\n", pass.Sprint("✓"), r.File)
		default:
			line := r.File
			if r.Message != "" {
				line += ": " + r.Message
			}
			fmt.Fprintf(w, "%s %s\n", fail.Sprint("✗"), line)
		}
		if r.Diff != "" {
			for _, l := range strings.Split(strings.TrimRight(r.Diff, "\n"), "\n") {
				fmt.Fprintf(w, "    %s\n", l)
			}
		}
	}

	fmt.Fprintf(w, "\n%d files: %d passed, %d failed, %d errors\n",
		summary.Total, summary.Passed, summary.Failed, summary.Errors)
	return nil
}
