package diagfmt

import (
	"sort"
	"strings"

	"github.com/Neswisoft/ruby/internal/source"
)

// LocationJSON представляет байтовый диапазон в исходнике для JSON.
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine int32  `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
}

// makeLocation создаёт LocationJSON из Span.
func makeLocation(span source.Span, src *source.Source, includePositions bool) LocationJSON {
	loc := LocationJSON{
		StartByte: span.Start,
		EndByte:   span.End(),
	}
	if includePositions && src != nil {
		loc.StartLine, loc.StartCol = lineCol(src, span.Start)
	}
	return loc
}

// lineCol resolves a byte offset to a 1-based line and byte column. Источник
// хранит только таблицу начал строк; колонки — забота форматтера.
func lineCol(src *source.Source, offset uint32) (int32, uint32) {
	n := sort.Search(len(src.LineOffsets), func(i int) bool {
		return src.LineOffsets[i] > offset
	})
	start := uint32(0)
	if n > 0 {
		start = src.LineOffsets[n-1]
	}
	return src.Line(offset), offset - start + 1
}

// lineAt returns the source line containing offset, without its terminator,
// plus the line's start offset.
func lineAt(src *source.Source, offset uint32) (string, uint32) {
	n := sort.Search(len(src.LineOffsets), func(i int) bool {
		return src.LineOffsets[i] > offset
	})
	start := uint32(0)
	if n > 0 {
		start = src.LineOffsets[n-1]
	}
	end := src.Len()
	if n < len(src.LineOffsets) {
		end = src.LineOffsets[n]
	}
	if start > src.Len() {
		return "", start
	}
	if end > src.Len() {
		end = src.Len()
	}
	line := string(src.Content[start:end])
	return strings.TrimRight(line, "\r\n"), start
}
