package loader

import (
	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/diag"
	"github.com/Neswisoft/ruby/internal/source"
	"github.com/Neswisoft/ruby/internal/token"
)

// ParseResult is everything one serialized buffer yields. Tree mode fills
// Root, token mode fills Tokens; metadata is present in both.
type ParseResult struct {
	// Source carries the original bytes plus the decoded encoding name,
	// start line and line offset table.
	Source *source.Source

	// Root is the root node of the syntax tree (tree mode only).
	Root *ast.Node

	// Tokens is the flat token stream (token mode only).
	Tokens []token.Token

	// Comments holds inline and embedded-doc comments in stream order.
	Comments []ast.Comment

	// MagicComments holds key/value magic comment locations.
	MagicComments []ast.MagicComment

	// DataSpan locates the __END__ data section, when present.
	DataSpan *source.Span

	// Errors holds parse errors recorded by the parser. Они — данные
	// результата, а не сбой декодера.
	Errors []diag.Error

	// Warnings holds parse warnings recorded by the parser.
	Warnings []diag.Warning
}

// HasErrors reports whether the parser recorded at least one error.
func (r *ParseResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether the parser recorded at least one warning.
func (r *ParseResult) HasWarnings() bool { return len(r.Warnings) > 0 }
