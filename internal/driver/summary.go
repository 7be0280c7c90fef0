package driver

import (
	"github.com/Neswisoft/ruby/internal/loader"
)

// Summary — краткий итог декодирования одной пары. Содержит ровно то, что
// печатает пакетный прогон, поэтому сводка целиком пригодна для кеша.
type Summary struct {
	Path     string
	Encoding string
	RootKind string
	Comments int
	Errors   int
	Warnings int
	Failed   bool   // пара не прочиталась или не декодировалась
	Message  string // текст ошибки при Failed
}

// Summarize collapses a decode outcome into its summary.
func Summarize(path string, res *loader.ParseResult, err error) Summary {
	if err != nil {
		return Summary{Path: path, Failed: true, Message: err.Error()}
	}
	s := Summary{
		Path:     path,
		Comments: len(res.Comments),
		Errors:   len(res.Errors),
		Warnings: len(res.Warnings),
	}
	if res.Source != nil {
		s.Encoding = res.Source.EncodingName
	}
	if res.Root != nil {
		s.RootKind = res.Root.Kind.String()
	}
	return s
}
