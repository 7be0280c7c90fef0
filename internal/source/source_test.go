package source

import (
	"bytes"
	"testing"
)

func TestSource_Slice(t *testing.T) {
	src := New([]byte("def foo; end"))

	tests := []struct {
		name     string
		span     Span
		expected []byte
		ok       bool
	}{
		{
			name:     "inner slice",
			span:     Span{Start: 4, Length: 3},
			expected: []byte("foo"),
			ok:       true,
		},
		{
			name:     "whole content",
			span:     Span{Start: 0, Length: 12},
			expected: []byte("def foo; end"),
			ok:       true,
		},
		{
			name:     "empty slice at end",
			span:     Span{Start: 12, Length: 0},
			expected: []byte{},
			ok:       true,
		},
		{
			name: "length past end",
			span: Span{Start: 10, Length: 5},
			ok:   false,
		},
		{
			name: "start past end",
			span: Span{Start: 13, Length: 0},
			ok:   false,
		},
		{
			name: "overflowing start+length",
			span: Span{Start: 0xFFFFFFFF, Length: 0xFFFFFFFF},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := src.Slice(tt.span)
			if ok != tt.ok {
				t.Fatalf("Slice() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !bytes.Equal(got, tt.expected) {
				t.Errorf("Slice() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSource_Line(t *testing.T) {
	src := New([]byte("a\nbb\nccc\n"))
	src.LineOffsets = []uint32{0, 2, 5, 9}

	tests := []struct {
		name      string
		startLine int32
		offset    uint32
		expected  int32
	}{
		{name: "first line", startLine: 1, offset: 0, expected: 1},
		{name: "second line start", startLine: 1, offset: 2, expected: 2},
		{name: "second line middle", startLine: 1, offset: 3, expected: 2},
		{name: "third line", startLine: 1, offset: 6, expected: 3},
		{name: "offset at trailing newline boundary", startLine: 1, offset: 9, expected: 4},
		{name: "custom start line", startLine: 5, offset: 3, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src.StartLine = tt.startLine
			if got := src.Line(tt.offset); got != tt.expected {
				t.Errorf("Line(%d) = %d, want %d", tt.offset, got, tt.expected)
			}
		})
	}
}

func TestSource_LineWithoutOffsets(t *testing.T) {
	src := New([]byte("x = 1"))
	if got := src.Line(3); got != 1 {
		t.Errorf("Line() without offsets = %d, want start line", got)
	}
}

func TestSource_Defaults(t *testing.T) {
	src := New(nil)
	if src.EncodingName != "UTF-8" {
		t.Errorf("default encoding = %q, want UTF-8", src.EncodingName)
	}
	if src.StartLine != 1 {
		t.Errorf("default start line = %d, want 1", src.StartLine)
	}
}
