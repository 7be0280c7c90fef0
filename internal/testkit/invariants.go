package testkit

import (
	"fmt"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/source"
)

// CheckResultInvariants runs a minimal set of structural invariants on a
// decoded result:
// 1) every span (nodes, fields, tokens, metadata) lies within the source
// 2) every node carries exactly the fields its schema names, kinds matching
// 3) a token stream, when present, is closed by EOF and uses valid types
func CheckResultInvariants(res *loader.ParseResult) error {
	if res == nil || res.Source == nil {
		return fmt.Errorf("nil result or source")
	}

	if res.Root != nil {
		if err := checkNode(res.Root, res.Source); err != nil {
			return err
		}
	}

	for i, tok := range res.Tokens {
		if !tok.Type.Valid() {
			return fmt.Errorf("token %d has invalid type %d", i, tok.Type)
		}
		if err := checkSpan(tok.Span, res.Source); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	if n := len(res.Tokens); n > 0 && !res.Tokens[n-1].IsEOF() {
		return fmt.Errorf("token stream not closed by EOF, ends with %v", res.Tokens[n-1].Type)
	}

	for i, c := range res.Comments {
		if err := checkSpan(c.Span, res.Source); err != nil {
			return fmt.Errorf("comment %d: %w", i, err)
		}
	}
	for i, mc := range res.MagicComments {
		if err := checkSpan(mc.KeySpan, res.Source); err != nil {
			return fmt.Errorf("magic comment %d key: %w", i, err)
		}
		if err := checkSpan(mc.ValueSpan, res.Source); err != nil {
			return fmt.Errorf("magic comment %d value: %w", i, err)
		}
	}
	if res.DataSpan != nil {
		if err := checkSpan(*res.DataSpan, res.Source); err != nil {
			return fmt.Errorf("data location: %w", err)
		}
	}
	return nil
}

func checkNode(n *ast.Node, src *source.Source) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if err := checkSpan(n.Span, src); err != nil {
		return fmt.Errorf("%v: %w", n.Kind, err)
	}
	defs := n.FieldDefs()
	if len(defs) != len(n.Fields) {
		return fmt.Errorf("%v has %d fields, schema names %d", n.Kind, len(n.Fields), len(defs))
	}
	for i, def := range defs {
		f := n.Fields[i]
		if f.Kind != def.Kind {
			return fmt.Errorf("%v.%s has shape %v, schema says %v", n.Kind, def.Name, f.Kind, def.Kind)
		}
		switch f.Kind {
		case ast.FieldNode:
			if f.Node == nil {
				return fmt.Errorf("%v.%s: required child missing", n.Kind, def.Name)
			}
			if err := checkNode(f.Node, src); err != nil {
				return err
			}
		case ast.FieldOptionalNode:
			if f.Node != nil {
				if err := checkNode(f.Node, src); err != nil {
					return err
				}
			}
		case ast.FieldNodeList:
			for _, child := range f.Nodes {
				if err := checkNode(child, src); err != nil {
					return err
				}
			}
		case ast.FieldLocation:
			if err := checkSpan(f.Span, src); err != nil {
				return fmt.Errorf("%v.%s: %w", n.Kind, def.Name, err)
			}
		case ast.FieldOptionalLocation:
			if f.SpanOK {
				if err := checkSpan(f.Span, src); err != nil {
					return fmt.Errorf("%v.%s: %w", n.Kind, def.Name, err)
				}
			}
		}
	}
	return nil
}

func checkSpan(span source.Span, src *source.Source) error {
	end := uint64(span.Start) + uint64(span.Length)
	if end > uint64(src.Len()) {
		return fmt.Errorf("span %v runs past source end %d", span, src.Len())
	}
	return nil
}
