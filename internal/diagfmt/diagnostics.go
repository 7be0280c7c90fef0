package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Neswisoft/ruby/internal/diag"
	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// DiagnosticJSON представляет одну диагностику парсера в JSON формате.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Type     string       `json:"type"`
	Level    string       `json:"level"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода.
type DiagnosticsOutput struct {
	Path        string           `json:"path,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
// Ошибки идут раньше предупреждений, внутри группы — в порядке потока.
func BuildDiagnosticsOutput(path string, res *loader.ParseResult, opts JSONOpts) DiagnosticsOutput {
	diagnostics := make([]DiagnosticJSON, 0, len(res.Errors)+len(res.Warnings))
	for _, e := range res.Errors {
		diagnostics = append(diagnostics, DiagnosticJSON{
			Severity: "error",
			Type:     e.Type.String(),
			Level:    e.Level.String(),
			Message:  e.Message,
			Location: makeLocation(e.Span, res.Source, opts.IncludePositions),
		})
	}
	for _, warn := range res.Warnings {
		diagnostics = append(diagnostics, DiagnosticJSON{
			Severity: "warning",
			Type:     warn.Type.String(),
			Level:    warn.Level.String(),
			Message:  warn.Message,
			Location: makeLocation(warn.Span, res.Source, opts.IncludePositions),
		})
	}
	if opts.Max > 0 && opts.Max < len(diagnostics) {
		diagnostics = diagnostics[:opts.Max]
	}
	return DiagnosticsOutput{Path: path, Diagnostics: diagnostics, Count: len(diagnostics)}
}

// FormatDiagnosticsJSON выводит диагностики одного результата в JSON формате.
func FormatDiagnosticsJSON(w io.Writer, path string, res *loader.ParseResult, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(path, res, opts))
}

// FormatDiagnosticsPretty форматирует диагностики в человекочитаемый вид.
// Для каждой печатает:
// <path>:<line>:<col>: <SEV> <type>: <message>
// затем контекст строки с подчёркиванием ^~~~ по спану.
func FormatDiagnosticsPretty(w io.Writer, path string, res *loader.ParseResult, opts PrettyOpts) error {
	for _, e := range res.Errors {
		sev := "error"
		if opts.Color {
			sev = errorColor.Sprint(sev)
		}
		label := e.Type.String()
		if e.Level == diag.LevelArgument {
			label += " (argument)"
		}
		if err := writeDiagnostic(w, path, res.Source, sev, label, e.Message, e.Span, opts); err != nil {
			return err
		}
	}
	for _, warn := range res.Warnings {
		if warn.Level == diag.LevelVerbose && !opts.Verbose {
			continue
		}
		sev := "warning"
		if opts.Color {
			sev = warningColor.Sprint(sev)
		}
		label := warn.Type.String()
		if warn.Level == diag.LevelVerbose {
			label += " (verbose)"
		}
		if err := writeDiagnostic(w, path, res.Source, sev, label, warn.Message, warn.Span, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnostic(w io.Writer, path string, src *source.Source, severity, label, message string, span source.Span, opts PrettyOpts) error {
	line, col := lineCol(src, span.Start)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, line, col, severity, label, message); err != nil {
		return err
	}
	if opts.ShowPreview {
		return writePreview(w, src, span)
	}
	return nil
}

// writePreview prints the offending source line plus a caret underline.
func writePreview(w io.Writer, src *source.Source, span source.Span) error {
	text, start := lineAt(src, span.Start)
	if text == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  %s\n", text); err != nil {
		return err
	}
	head := int(span.Start) - int(start)
	if head < 0 {
		head = 0
	}
	if head > len(text) {
		head = len(text)
	}
	tail := head + int(span.Length)
	if tail > len(text) {
		tail = len(text)
	}
	// Отступ и длина подчёркивания — в экранных колонках, не в байтах.
	pad := runewidth.StringWidth(text[:head])
	marker := "^"
	if tail > head {
		if extra := runewidth.StringWidth(text[head:tail]) - 1; extra > 0 {
			marker += strings.Repeat("~", extra)
		}
	}
	_, err := fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
	return err
}
