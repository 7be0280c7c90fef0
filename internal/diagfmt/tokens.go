package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Neswisoft/ruby/internal/loader"
)

// TokenOutput представляет один токен для JSON.
type TokenOutput struct {
	Type     string       `json:"type"`
	Text     string       `json:"text,omitempty"`
	Span     LocationJSON `json:"span"`
	LexState uint32       `json:"lex_state"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, res *loader.ParseResult) error {
	for i, tok := range res.Tokens {
		fmt.Fprintf(w, "%3d: %-28s", i+1, tok.Type.String())

		if text, ok := res.Source.Slice(tok.Span); ok && len(text) > 0 && len(text) <= 40 && !tok.IsEOF() {
			fmt.Fprintf(w, " %q", text)
		}

		startLine, startCol := lineCol(res.Source, tok.Span.Start)
		endLine, endCol := lineCol(res.Source, tok.Span.End())
		fmt.Fprintf(w, " at %d:%d-%d:%d", startLine, startCol, endLine, endCol)

		if tok.LexState != 0 {
			fmt.Fprintf(w, " (state %#x)", tok.LexState)
		}

		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, res *loader.ParseResult, opts JSONOpts) error {
	output := make([]TokenOutput, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		out := TokenOutput{
			Type:     tok.Type.String(),
			Span:     makeLocation(tok.Span, res.Source, opts.IncludePositions),
			LexState: tok.LexState,
		}
		if text, ok := res.Source.Slice(tok.Span); ok {
			out.Text = string(text)
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
