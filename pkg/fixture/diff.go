package fixture

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOptions controls how a diff is rendered.
type DiffOptions struct {
	// Color forces ANSI colors on regardless of the terminal.
	Color bool

	// Context is the number of unchanged lines kept around each change.
	// Negative keeps every line.
	Context int
}

// Canonical renders a dict-form value as canonical YAML text, the form that
// Diff compares.
func Canonical(m map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, m, 2); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Diff compares two dict-form values line by line and reports whether they
// differ. Removed lines are prefixed "-", added lines "+".
func Diff(want, got map[string]any, opts DiffOptions) (string, bool, error) {
	a, err := Canonical(want)
	if err != nil {
		return "", false, fmt.Errorf("failed to render expected document: %w", err)
	}
	b, err := Canonical(got)
	if err != nil {
		return "", false, fmt.Errorf("failed to render actual document: %w", err)
	}
	if a == b {
		return "", false, nil
	}

	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	return render(diffs, opts), true, nil
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

func render(diffs []diffpatch.Diff, opts DiffOptions) string {
	var all []diffLine
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			all = append(all, diffLine{op: d.Type, text: strings.TrimSuffix(line, "\n")})
		}
	}

	keep := make([]bool, len(all))
	for i, l := range all {
		if opts.Context < 0 {
			keep[i] = true
			continue
		}
		if l.op == diffpatch.DiffEqual {
			continue
		}
		for j := max(i-opts.Context, 0); j <= min(i+opts.Context, len(all)-1); j++ {
			keep[j] = true
		}
	}

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	sep := color.New(color.FgCyan)
	if opts.Color {
		del.EnableColor()
		ins.EnableColor()
		sep.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
		sep.DisableColor()
	}

	var sb strings.Builder
	skipped := false
	for i, l := range all {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			sb.WriteString(sep.Sprint("@@ ... @@"))
			sb.WriteByte('\n')
			skipped = false
		}
		switch l.op {
		case diffpatch.DiffDelete:
			sb.WriteString(del.Sprint("-" + l.text))
		case diffpatch.DiffInsert:
			sb.WriteString(ins.Sprint("+" + l.text))
		default:
			sb.WriteString(" " + l.text)
		}
		sb.WriteByte('\n')
	}
	if skipped {
		sb.WriteString(sep.Sprint("@@ ... @@"))
		sb.WriteByte('\n')
	}
	return sb.String()
}
