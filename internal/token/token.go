// Package token defines the lexer token types of the serialized schema.
// Токены — плоские записи: поток никогда не вкладывает их друг в друга.
package token

import (
	"github.com/Neswisoft/ruby/internal/source"
)

// Token is one decoded lexer token.
type Token struct {
	Type     Type
	Span     source.Span
	LexState uint32
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Type >= KeywordAlias && t.Type <= KeywordLine
}

// IsNumeric reports whether the token is a numeric literal.
func (t Token) IsNumeric() bool {
	switch t.Type {
	case Float, FloatImaginary, FloatRational, FloatRationalImaginary,
		Integer, IntegerImaginary, IntegerRational, IntegerRationalImaginary:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the token closes its stream.
func (t Token) IsEOF() bool { return t.Type == EOF }
