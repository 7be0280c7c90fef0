// Package diag models the diagnostics carried in the serialized metadata
// section. Ошибки и предупреждения здесь — данные разбора, а не сбои
// декодера: они приходят уже готовыми от продюсера потока.
package diag

import (
	"github.com/Neswisoft/ruby/internal/source"
)

// Error is one parse error decoded from the metadata section.
type Error struct {
	Type    ErrorType
	Message string
	Span    source.Span
	Level   ErrorLevel
}

// Warning is one parse warning decoded from the metadata section.
type Warning struct {
	Type    WarningType
	Message string
	Span    source.Span
	Level   WarningLevel
}
