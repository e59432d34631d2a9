package ast

import "testing"

func TestNewSource_LineStarts(t *testing.T) {
	src := NewSource("\na: int128\n    ", 0)

	want := []int{0, 1, 11}
	if len(src.LineStarts) != len(want) {
		t.Fatalf("LineStarts = %v, want %v", src.LineStarts, want)
	}
	for i := range want {
		if src.LineStarts[i] != want[i] {
			t.Errorf("LineStarts[%d] = %d, want %d", i, src.LineStarts[i], want[i])
		}
	}
}

func TestSource_Offset(t *testing.T) {
	src := NewSource("ab\ncde\n", 0)

	tests := []struct {
		name      string
		line, col int
		want      int
	}{
		{"first byte", 1, 0, 0},
		{"second line", 2, 1, 4},
		{"line before start", 0, 5, 0},
		{"line after end", 9, 0, 7},
		{"column past end", 3, 40, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := src.Offset(tt.line, tt.col); got != tt.want {
				t.Errorf("Offset(%d, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestSource_Summary(t *testing.T) {
	src := NewSource("\na: int128\n    ", 2)

	tests := []struct {
		span Span
		want string
	}{
		{Span{1, 0, 3, 4}, "0:15:2"},
		{Span{2, 0, 2, 9}, "1:9:2"},
		{Span{2, 0, 2, 1}, "1:1:2"},
		{Span{2, 3, 2, 9}, "4:6:2"},
		// Reversed spans never yield a negative length.
		{Span{2, 5, 2, 3}, "6:0:2"},
	}

	for _, tt := range tests {
		if got := src.Summary(tt.span); got != tt.want {
			t.Errorf("Summary(%s) = %q, want %q", tt.span, got, tt.want)
		}
	}
}

func TestSource_SnippetAndLine(t *testing.T) {
	src := NewSource("\na: int128\n    ", 0)

	if got := src.Snippet(Span{2, 3, 2, 9}); got != "int128" {
		t.Errorf("Snippet() = %q, want %q", got, "int128")
	}
	if got := src.Snippet(Span{2, 5, 2, 3}); got != "" {
		t.Errorf("Snippet() of reversed span = %q, want empty", got)
	}
	if got := src.Line(2); got != "a: int128" {
		t.Errorf("Line(2) = %q, want %q", got, "a: int128")
	}
	if got := src.Line(7); got != "" {
		t.Errorf("Line(7) = %q, want empty", got)
	}
}

func TestSpan(t *testing.T) {
	s := Span{StartLine: 2, StartCol: 3, EndLine: 2, EndCol: 9}
	if got := s.String(); got != "2:3-2:9" {
		t.Errorf("String() = %q, want %q", got, "2:3-2:9")
	}
	if !s.IsValid() {
		t.Error("IsValid() = false, want true")
	}
	if (Span{}).IsValid() {
		t.Error("zero span should not be valid")
	}
}
