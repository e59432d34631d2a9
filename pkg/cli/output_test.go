package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func testResults() []FileResult {
	return []FileResult{
		{File: "a.json", Status: StatusPass},
		{File: "b.json", Status: StatusFail, Message: "round trip changed the document", Diff: "-x\n+y\n"},
		{File: "c.json", Status: StatusError, Message: "unknown variant tag"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testResults())
	want := Summary{Total: 3, Passed: 1, Failed: 1, Errors: 1}
	if s != want {
		t.Errorf("Summarize() = %+v, want %+v", s, want)
	}
	if s.OK() {
		t.Error("OK() = true, want false")
	}
	if !Summarize(testResults()[:1]).OK() {
		t.Error("OK() = false for all passing")
	}
}

func TestWriteResults_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, FormatText, testResults(), false); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"✓ a.json\n",
		"✗ b.json: round trip changed the document\n",
		"    -x\n    +y\n",
		"✗ c.json: unknown variant tag\n",
		"3 files: 1 passed, 1 failed, 1 errors\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("uncolored output contains escapes")
	}
}

func TestWriteResults_Colored(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, FormatText, testResults(), true); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[32m") {
		t.Errorf("colored output missing green:\n%q", buf.String())
	}
}

func TestWriteResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, FormatJSON, testResults(), true); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(report.Results) != 3 {
		t.Errorf("results = %d, want 3", len(report.Results))
	}
	if report.Summary.Failed != 1 {
		t.Errorf("summary.failed = %d, want 1", report.Summary.Failed)
	}
	if report.Results[0].Diff != "" || report.Results[1].Diff == "" {
		t.Error("diff should only be set on the failing result")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v", tt.in, got, err)
		}
		var cfgErr *ConfigError
		if tt.wantErr && !errors.As(err, &cfgErr) {
			t.Errorf("ParseOutputFormat(%q) error = %T, want *ConfigError", tt.in, err)
		}
	}
}
