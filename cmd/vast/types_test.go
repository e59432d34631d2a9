package main

import (
	"bytes"
	"strings"
	"testing"

	"vyper-hq/vast/pkg/vyast/ast"
)

func TestTypes(t *testing.T) {
	var buf bytes.Buffer
	cmd := testCommand(t, &buf)
	typesFlags.fields = false

	if err := runTypes(cmd, nil); err != nil {
		t.Fatalf("runTypes() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	tags := ast.Types()
	if len(lines) != len(tags) {
		t.Fatalf("runTypes() printed %d lines, want %d", len(lines), len(tags))
	}
	for i, tag := range tags {
		if lines[i] != tag {
			t.Errorf("line %d = %q, want %q", i, lines[i], tag)
		}
	}
}

func TestTypesFields(t *testing.T) {
	var buf bytes.Buffer
	cmd := testCommand(t, &buf)
	typesFlags.fields = true

	if err := runTypes(cmd, nil); err != nil {
		t.Fatalf("runTypes() error = %v", err)
	}

	fieldsOf := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		parts := strings.Fields(line)
		fieldsOf[parts[0]] = strings.Join(parts[1:], " ")
	}

	tests := map[string]string{
		"AnnAssign": "target annotation value? simple",
		"Module":    "body[]",
		"USub":      "-",
		"UnaryOp":   "op operand",
	}
	for tag, want := range tests {
		if got := fieldsOf[tag]; got != want {
			t.Errorf("fields of %s = %q, want %q", tag, got, want)
		}
	}
}
