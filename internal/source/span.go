package source

import (
	"fmt"
)

// Span is a byte range into the source buffer.
type Span struct {
	Start  uint32 // в байтах, включительно
	Length uint32
}

// NewSpan builds a span from a start offset and a length.
func NewSpan(start, length uint32) Span {
	return Span{Start: start, Length: length}
}

// End returns the exclusive end offset of the span.
func (s Span) End() uint32 {
	return s.Start + s.Length
}

func (s Span) Empty() bool {
	return s.Length == 0
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End())
}

// Cover extends the span so it also covers other.
func (s Span) Cover(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Span{Start: start, Length: end - start}
}
