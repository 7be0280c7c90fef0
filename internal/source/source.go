package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Source holds the raw bytes one serialized tree was parsed from, together
// with the positional metadata the decoder fills in while it walks the
// header of the serialized stream.
//
// A Source is mutated in exactly three staged steps during a decode
// (encoding name, then start line, then line offsets) and is immutable
// afterwards. Every node, token, and diagnostic produced by that decode
// borrows the same Source for its whole lifetime.
type Source struct {
	Content      []byte
	EncodingName string
	StartLine    int32
	LineOffsets  []uint32
}

// New wraps raw source bytes. The positional fields are filled in by the
// decoder; until then the source reports UTF-8 and start line 1.
func New(content []byte) *Source {
	// Смещения в формате 32-битные, поэтому буфер больше 4 ГиБ не валиден.
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source content overflow: %w", err))
	}
	return &Source{
		Content:      content,
		EncodingName: "UTF-8",
		StartLine:    1,
	}
}

// Len returns the source length in bytes.
func (s *Source) Len() uint32 {
	return uint32(len(s.Content))
}

// Slice returns the bytes covered by span. ok is false when the span does
// not fit inside the content.
func (s *Source) Slice(span Span) ([]byte, bool) {
	end := uint64(span.Start) + uint64(span.Length)
	if end > uint64(len(s.Content)) {
		return nil, false
	}
	return s.Content[span.Start:span.End()], true
}

// Line resolves a byte offset to its 1-based line number, honouring the
// configured start line. Column resolution is deliberately not provided;
// consumers that need it own that logic themselves.
func (s *Source) Line(offset uint32) int32 {
	n := sort.Search(len(s.LineOffsets), func(i int) bool {
		return s.LineOffsets[i] > offset
	})
	if n == 0 {
		// До первого известного начала строки (или смещений нет вовсе).
		return s.StartLine
	}
	line, err := safecast.Conv[int32](n - 1)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return s.StartLine + line
}
