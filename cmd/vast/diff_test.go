package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDiffIdentical(t *testing.T) {
	var buf bytes.Buffer
	cmd := testCommand(t, &buf)

	yamlCopy := writeFile(t, "basic.yaml", `
ast:
  ast_type: Module
  body:
    - annotation:
        ast_type: Name
        col_offset: 3
        ctx: {ast_type: Load, node_id: 5, lineno: 2, col_offset: 3, end_lineno: 2, end_col_offset: 9, src: "4:6:0"}
        end_col_offset: 9
        end_lineno: 2
        id: int128
        lineno: 2
        node_id: 4
        src: "4:6:0"
      ast_type: AnnAssign
      col_offset: 0
      end_col_offset: 9
      end_lineno: 2
      lineno: 2
      node_id: 1
      simple: 1
      src: "1:9:0"
      target:
        ast_type: Name
        col_offset: 0
        ctx: {ast_type: Store, node_id: 3, lineno: 2, col_offset: 0, end_lineno: 2, end_col_offset: 1, src: "1:1:0"}
        end_col_offset: 1
        end_lineno: 2
        id: a
        lineno: 2
        node_id: 2
        src: "1:1:0"
      value: null
  col_offset: 0
  end_col_offset: 4
  end_lineno: 3
  lineno: 1
  node_id: 0
  src: "0:15:0"
contract_name: basic
`)

	if err := runDiff(cmd, []string{"testdata/basic.json", yamlCopy}); err != nil {
		t.Fatalf("runDiff() error = %v\n%s", err, buf.String())
	}
	if buf.Len() != 0 {
		t.Errorf("runDiff() of equal documents printed:\n%s", buf.String())
	}
}

func TestDiffDifferent(t *testing.T) {
	var buf bytes.Buffer
	cmd := testCommand(t, &buf)

	err := runDiff(cmd, []string{"testdata/basic.json", "testdata/negative.ast.json"})
	if !errors.Is(err, errDocumentsDiffer) {
		t.Fatalf("runDiff() error = %v, want errDocumentsDiffer", err)
	}

	out := buf.String()
	for _, want := range []string{
		"--- testdata/basic.json\n",
		"+++ testdata/negative.ast.json\n",
		"-contract_name: basic",
		"+contract_name: negative",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("diff missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("uncolored diff contains escapes")
	}
}

func TestDiffMissingFile(t *testing.T) {
	var buf bytes.Buffer
	cmd := testCommand(t, &buf)

	err := runDiff(cmd, []string{"testdata/basic.json", "testdata/nonexistent.json"})
	if err == nil || errors.Is(err, errDocumentsDiffer) {
		t.Errorf("runDiff() error = %v, want a load error", err)
	}
}
