package source

import (
	"testing"
)

func TestSpan_End(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected uint32
	}{
		{
			name:     "normal span",
			span:     Span{Start: 10, Length: 5},
			expected: 15,
		},
		{
			name:     "zero-length span",
			span:     Span{Start: 42, Length: 0},
			expected: 42,
		},
		{
			name:     "span at offset zero",
			span:     Span{Start: 0, Length: 7},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.End(); got != tt.expected {
				t.Errorf("End() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSpan_Empty(t *testing.T) {
	if !(Span{Start: 3, Length: 0}).Empty() {
		t.Errorf("zero-length span should be empty")
	}
	if (Span{Start: 3, Length: 1}).Empty() {
		t.Errorf("non-zero-length span should not be empty")
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			span:     Span{Start: 10, Length: 5},
			other:    Span{Start: 20, Length: 5},
			expected: Span{Start: 10, Length: 15},
		},
		{
			name:     "other before span",
			span:     Span{Start: 10, Length: 5},
			other:    Span{Start: 2, Length: 3},
			expected: Span{Start: 2, Length: 13},
		},
		{
			name:     "contained span",
			span:     Span{Start: 10, Length: 20},
			other:    Span{Start: 12, Length: 4},
			expected: Span{Start: 10, Length: 20},
		},
		{
			name:     "identical spans",
			span:     Span{Start: 5, Length: 5},
			other:    Span{Start: 5, Length: 5},
			expected: Span{Start: 5, Length: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{Start: 10, Length: 5}
	if got := s.String(); got != "10-15" {
		t.Errorf("String() = %q, want %q", got, "10-15")
	}
}
