package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}},
		{name: "json debug", cfg: Config{Level: "debug", Format: "json"}},
		{name: "console upper case", cfg: Config{Level: "WARN", Format: "CONSOLE"}},
		{name: "bad level", cfg: Config{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestConsoleDropsTime(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Config{Format: "console", Writer: &buf})
	logger.Info("hello")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("console output has a timestamp: %s", buf.String())
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Config{Format: "json", Writer: &buf})

	ctx := WithUnitID(context.Background(), "u-1")
	ctx = WithContract(ctx, "Token")
	ctx = WithPass(ctx, "fold")
	logger.With("component", "test").InfoContext(ctx, "done")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json record %q: %v", buf.String(), err)
	}
	want := map[string]string{
		"unit_id":   "u-1",
		"contract":  "Token",
		"pass":      "fold",
		"component": "test",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("record[%q] = %v, want %q", k, rec[k], v)
		}
	}
}

func TestContextGetters(t *testing.T) {
	ctx := context.Background()
	if GetUnitID(ctx) != "" || GetContract(ctx) != "" || GetPass(ctx) != "" {
		t.Error("empty context should yield empty fields")
	}
	ctx = WithUnitID(ctx, "abc")
	if got := GetUnitID(ctx); got != "abc" {
		t.Errorf("GetUnitID() = %q, want %q", got, "abc")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger should not be enabled")
	}
}
