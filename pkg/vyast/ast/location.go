package ast

import (
	"fmt"
	"strings"
)

// Span is the textual range of a node in the original source.
// Lines are 1-based, columns are 0-based byte offsets within the line.
type Span struct {
	StartLine int // lineno
	StartCol  int // col_offset
	EndLine   int // end_lineno
	EndCol    int // end_col_offset
}

// String returns the span as "line:col-line:col".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// IsValid returns true if the span has a start line.
func (s Span) IsValid() bool {
	return s.StartLine > 0
}

// Source is the original text of one compilation unit. A single *Source is
// shared by every node of a tree and must not be modified once annotated.
type Source struct {
	Text       string // Full source text
	Index      int    // Position of this unit among the sources of a compilation
	LineStarts []int  // Byte offset of the first byte of each line
}

// NewSource builds a Source and its line table.
func NewSource(text string, index int) *Source {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Source{
		Text:       text,
		Index:      index,
		LineStarts: starts,
	}
}

// Offset converts a line/column position to a byte offset into Text.
// Out of range positions are clamped to the text.
func (s *Source) Offset(line, col int) int {
	if line < 1 {
		return 0
	}
	if line > len(s.LineStarts) {
		return len(s.Text)
	}
	off := s.LineStarts[line-1] + col
	if off < 0 {
		return 0
	}
	if off > len(s.Text) {
		return len(s.Text)
	}
	return off
}

// Summary returns the "<start_byte>:<byte_length>:<source_index>" form of span.
func (s *Source) Summary(span Span) string {
	start := s.Offset(span.StartLine, span.StartCol)
	end := s.Offset(span.EndLine, span.EndCol)
	length := end - start
	if length < 0 {
		length = 0
	}
	return fmt.Sprintf("%d:%d:%d", start, length, s.Index)
}

// Snippet returns the text covered by span.
func (s *Source) Snippet(span Span) string {
	start := s.Offset(span.StartLine, span.StartCol)
	end := s.Offset(span.EndLine, span.EndCol)
	if end < start {
		return ""
	}
	return s.Text[start:end]
}

// Line returns the text of the given 1-based line without its newline.
func (s *Source) Line(line int) string {
	if line < 1 || line > len(s.LineStarts) {
		return ""
	}
	start := s.LineStarts[line-1]
	end := len(s.Text)
	if line < len(s.LineStarts) {
		end = s.LineStarts[line]
	}
	return strings.TrimRight(s.Text[start:end], "\r\n")
}
