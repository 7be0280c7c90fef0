package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/source"
)

var kindColor = color.New(color.FgCyan, color.Bold)

// NodeOutput представляет один узел дерева для JSON.
type NodeOutput struct {
	Kind   string         `json:"kind"`
	Span   LocationJSON   `json:"span"`
	Fields map[string]any `json:"fields,omitempty"`
}

// CommentOutput представляет комментарий из метаданных.
type CommentOutput struct {
	Kind string       `json:"kind"`
	Span LocationJSON `json:"span"`
}

// MagicCommentOutput представляет магический комментарий из метаданных.
type MagicCommentOutput struct {
	Key   LocationJSON `json:"key"`
	Value LocationJSON `json:"value"`
}

// ParseOutput представляет корневую структуру JSON вывода разбора.
type ParseOutput struct {
	Encoding      string               `json:"encoding"`
	StartLine     int32                `json:"start_line"`
	Root          *NodeOutput          `json:"root"`
	Comments      []CommentOutput      `json:"comments,omitempty"`
	MagicComments []MagicCommentOutput `json:"magic_comments,omitempty"`
	Data          *LocationJSON        `json:"data,omitempty"`
	Errors        []DiagnosticJSON     `json:"errors,omitempty"`
	Warnings      []DiagnosticJSON     `json:"warnings,omitempty"`
}

// BuildParseOutput формирует структуру JSON-вывода дерева без сериализации.
func BuildParseOutput(res *loader.ParseResult, opts JSONOpts) ParseOutput {
	out := ParseOutput{
		Encoding:  res.Source.EncodingName,
		StartLine: res.Source.StartLine,
		Root:      buildNodeOutput(res.Root, res.Source, opts),
	}
	for _, c := range res.Comments {
		out.Comments = append(out.Comments, CommentOutput{
			Kind: c.Kind.String(),
			Span: makeLocation(c.Span, res.Source, opts.IncludePositions),
		})
	}
	for _, mc := range res.MagicComments {
		out.MagicComments = append(out.MagicComments, MagicCommentOutput{
			Key:   makeLocation(mc.KeySpan, res.Source, opts.IncludePositions),
			Value: makeLocation(mc.ValueSpan, res.Source, opts.IncludePositions),
		})
	}
	if res.DataSpan != nil {
		loc := makeLocation(*res.DataSpan, res.Source, opts.IncludePositions)
		out.Data = &loc
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, DiagnosticJSON{
			Severity: "error",
			Type:     e.Type.String(),
			Level:    e.Level.String(),
			Message:  e.Message,
			Location: makeLocation(e.Span, res.Source, opts.IncludePositions),
		})
	}
	for _, warn := range res.Warnings {
		out.Warnings = append(out.Warnings, DiagnosticJSON{
			Severity: "warning",
			Type:     warn.Type.String(),
			Level:    warn.Level.String(),
			Message:  warn.Message,
			Location: makeLocation(warn.Span, res.Source, opts.IncludePositions),
		})
	}
	return out
}

// FormatTreeJSON выводит результат разбора в JSON формате.
func FormatTreeJSON(w io.Writer, res *loader.ParseResult, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildParseOutput(res, opts))
}

func buildNodeOutput(n *ast.Node, src *source.Source, opts JSONOpts) *NodeOutput {
	if n == nil {
		return nil
	}
	out := &NodeOutput{
		Kind: n.Kind.String(),
		Span: makeLocation(n.Span, src, opts.IncludePositions),
	}
	defs := n.FieldDefs()
	if len(defs) == 0 {
		return out
	}
	fields := make(map[string]any, len(defs))
	for i, def := range defs {
		fields[def.Name] = fieldJSON(n.Fields[i], src, opts)
	}
	out.Fields = fields
	return out
}

func fieldJSON(f ast.Field, src *source.Source, opts JSONOpts) any {
	switch f.Kind {
	case ast.FieldNode, ast.FieldOptionalNode:
		if f.Node == nil {
			return nil
		}
		return buildNodeOutput(f.Node, src, opts)
	case ast.FieldNodeList:
		children := make([]*NodeOutput, len(f.Nodes))
		for i, child := range f.Nodes {
			children[i] = buildNodeOutput(child, src, opts)
		}
		return children
	case ast.FieldString:
		return f.Str
	case ast.FieldConstant:
		return f.Const
	case ast.FieldOptionalConstant:
		if !f.ConstOK {
			return nil
		}
		return f.Const
	case ast.FieldConstantList:
		return f.Consts
	case ast.FieldLocation:
		return makeLocation(f.Span, src, opts.IncludePositions)
	case ast.FieldOptionalLocation:
		if !f.SpanOK {
			return nil
		}
		return makeLocation(f.Span, src, opts.IncludePositions)
	case ast.FieldUint8:
		return f.U8
	case ast.FieldUint32, ast.FieldFlags:
		return f.U32
	case ast.FieldInteger:
		if f.Int == nil {
			return nil
		}
		// Строкой: JSON-числа теряют точность за 2^53.
		return f.Int.String()
	case ast.FieldDouble:
		return f.F64
	default:
		return nil
	}
}

// FormatTreePretty печатает дерево с псевдографическими соединителями.
func FormatTreePretty(w io.Writer, res *loader.ParseResult, opts PrettyOpts) error {
	if res.Root == nil {
		_, err := fmt.Fprintln(w, "<no tree>")
		return err
	}
	fmt.Fprintln(w, nodeLabel(res.Root, opts))
	writeNodePretty(w, res.Root, "", opts)
	return nil
}

func nodeLabel(n *ast.Node, opts PrettyOpts) string {
	kind := n.Kind.String()
	if opts.Color {
		kind = kindColor.Sprint(kind)
	}
	return fmt.Sprintf("%s (span: %s)", kind, n.Span)
}

func writeNodePretty(w io.Writer, n *ast.Node, prefix string, opts PrettyOpts) {
	defs := n.FieldDefs()
	for i, def := range defs {
		connector, childPrefix := "├─", prefix+"│  "
		if i == len(defs)-1 {
			connector, childPrefix = "└─", prefix+"   "
		}

		f := n.Fields[i]
		switch f.Kind {
		case ast.FieldNode, ast.FieldOptionalNode:
			if f.Node == nil {
				fmt.Fprintf(w, "%s%s %s: <none>\n", prefix, connector, def.Name)
				continue
			}
			fmt.Fprintf(w, "%s%s %s: %s\n", prefix, connector, def.Name, nodeLabel(f.Node, opts))
			writeNodePretty(w, f.Node, childPrefix, opts)

		case ast.FieldNodeList:
			fmt.Fprintf(w, "%s%s %s[%d]\n", prefix, connector, def.Name, len(f.Nodes))
			for j, child := range f.Nodes {
				cc, cp := "├─", childPrefix+"│  "
				if j == len(f.Nodes)-1 {
					cc, cp = "└─", childPrefix+"   "
				}
				fmt.Fprintf(w, "%s%s [%d] %s\n", childPrefix, cc, j, nodeLabel(child, opts))
				writeNodePretty(w, child, cp, opts)
			}

		case ast.FieldString:
			fmt.Fprintf(w, "%s%s %s: %q\n", prefix, connector, def.Name, f.Str)

		case ast.FieldConstant:
			fmt.Fprintf(w, "%s%s %s: %q\n", prefix, connector, def.Name, f.Const)

		case ast.FieldOptionalConstant:
			if !f.ConstOK {
				fmt.Fprintf(w, "%s%s %s: <none>\n", prefix, connector, def.Name)
				continue
			}
			fmt.Fprintf(w, "%s%s %s: %q\n", prefix, connector, def.Name, f.Const)

		case ast.FieldConstantList:
			fmt.Fprintf(w, "%s%s %s: %q\n", prefix, connector, def.Name, f.Consts)

		case ast.FieldLocation:
			fmt.Fprintf(w, "%s%s %s: %s\n", prefix, connector, def.Name, f.Span)

		case ast.FieldOptionalLocation:
			if !f.SpanOK {
				fmt.Fprintf(w, "%s%s %s: <none>\n", prefix, connector, def.Name)
				continue
			}
			fmt.Fprintf(w, "%s%s %s: %s\n", prefix, connector, def.Name, f.Span)

		case ast.FieldUint8:
			fmt.Fprintf(w, "%s%s %s: %d\n", prefix, connector, def.Name, f.U8)

		case ast.FieldUint32:
			fmt.Fprintf(w, "%s%s %s: %d\n", prefix, connector, def.Name, f.U32)

		case ast.FieldFlags:
			fmt.Fprintf(w, "%s%s %s: %#x\n", prefix, connector, def.Name, f.U32)

		case ast.FieldInteger:
			fmt.Fprintf(w, "%s%s %s: %v\n", prefix, connector, def.Name, f.Int)

		case ast.FieldDouble:
			fmt.Fprintf(w, "%s%s %s: %g\n", prefix, connector, def.Name, f.F64)
		}
	}
}
