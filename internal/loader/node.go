package loader

import (
	"fmt"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/source"
	"github.com/Neswisoft/ruby/internal/wire"
)

// Формы строковых полей в потоке.
const (
	stringSource   = 1 // пара (start, length) в исходнике
	stringEmbedded = 2 // varuint-длина и байты прямо в потоке
)

// node decodes one node record: kind byte, packed location, length hint for
// the kinds that carry one, then every schema field in order.
func (l *loader) node() (*ast.Node, error) {
	if l.depth >= l.maxDepth {
		return nil, fmt.Errorf("node at offset %d: depth %d: %w", l.cur.Pos(), l.depth, ErrTooDeep)
	}
	l.depth++
	defer func() { l.depth-- }()

	pos := l.cur.Pos()
	b, err := l.cur.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading node kind: %w", err)
	}
	kind := ast.Kind(b)
	defs, ok := ast.Schema(kind)
	if !ok {
		return nil, fmt.Errorf("node kind %d at offset %d: %w", b, pos, ErrUnknownTag)
	}

	span, err := l.location()
	if err != nil {
		return nil, fmt.Errorf("%s location: %w", kind, err)
	}

	if ast.HasLengthHint(kind) {
		// Подсказка длины нужна только потоковым потребителям; здесь
		// она читается и отбрасывается.
		if _, err := l.cur.Uint32(); err != nil {
			return nil, fmt.Errorf("%s length hint: %w", kind, err)
		}
	}

	var fields []ast.Field
	if len(defs) > 0 {
		fields = make([]ast.Field, len(defs))
		for i, def := range defs {
			f, err := l.field(def.Kind)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", kind, def.Name, err)
			}
			fields[i] = f
		}
	}
	return &ast.Node{Kind: kind, Span: span, Fields: fields}, nil
}

// field decodes a single field value of the given shape.
func (l *loader) field(kind ast.FieldKind) (ast.Field, error) {
	f := ast.Field{Kind: kind}
	switch kind {
	case ast.FieldNode:
		child, err := l.node()
		if err != nil {
			return f, err
		}
		f.Node = child

	case ast.FieldOptionalNode:
		b, err := l.cur.ReadByte()
		if err != nil {
			return f, err
		}
		if b != 0 {
			// Ненулевой байт — уже первый байт узла: вернуть его
			// потоку и декодировать узел целиком.
			if err := l.cur.UnreadByte(); err != nil {
				return f, err
			}
			child, err := l.node()
			if err != nil {
				return f, err
			}
			f.Node = child
		}

	case ast.FieldNodeList:
		count, err := l.cur.Varuint32()
		if err != nil {
			return f, err
		}
		if count > l.cur.Remaining() {
			return f, fmt.Errorf("node list with %d entries, %d bytes remain: %w",
				count, l.cur.Remaining(), wire.ErrTruncated)
		}
		nodes := make([]*ast.Node, count)
		for i := range nodes {
			child, err := l.node()
			if err != nil {
				return f, fmt.Errorf("[%d]: %w", i, err)
			}
			nodes[i] = child
		}
		f.Nodes = nodes

	case ast.FieldString:
		s, err := l.str()
		if err != nil {
			return f, err
		}
		f.Str = s

	case ast.FieldConstant:
		v, err := l.pool.Required(l.cur)
		if err != nil {
			return f, err
		}
		f.Const, f.ConstOK = v, true

	case ast.FieldOptionalConstant:
		v, ok, err := l.pool.Optional(l.cur)
		if err != nil {
			return f, err
		}
		f.Const, f.ConstOK = v, ok

	case ast.FieldConstantList:
		count, err := l.cur.Varuint32()
		if err != nil {
			return f, err
		}
		if count > l.cur.Remaining() {
			return f, fmt.Errorf("constant list with %d entries, %d bytes remain: %w",
				count, l.cur.Remaining(), wire.ErrTruncated)
		}
		consts := make([]string, count)
		for i := range consts {
			v, err := l.pool.Required(l.cur)
			if err != nil {
				return f, fmt.Errorf("[%d]: %w", i, err)
			}
			consts[i] = v
		}
		f.Consts = consts

	case ast.FieldLocation:
		span, err := l.location()
		if err != nil {
			return f, err
		}
		f.Span, f.SpanOK = span, true

	case ast.FieldOptionalLocation:
		b, err := l.cur.ReadByte()
		if err != nil {
			return f, err
		}
		if b != 0 {
			span, err := l.location()
			if err != nil {
				return f, err
			}
			f.Span, f.SpanOK = span, true
		}

	case ast.FieldUint8:
		b, err := l.cur.ReadByte()
		if err != nil {
			return f, err
		}
		f.U8 = b

	case ast.FieldUint32, ast.FieldFlags:
		v, err := l.cur.Varuint32()
		if err != nil {
			return f, err
		}
		f.U32 = v

	case ast.FieldInteger:
		n, err := l.cur.BigInt()
		if err != nil {
			return f, err
		}
		f.Int = n

	case ast.FieldDouble:
		v, err := l.cur.Double()
		if err != nil {
			return f, err
		}
		f.F64 = v

	default:
		return f, fmt.Errorf("field shape %d: %w", kind, ErrUnknownTag)
	}
	return f, nil
}

// str decodes one tagged string field.
func (l *loader) str() (string, error) {
	tag, err := l.cur.ReadByte()
	if err != nil {
		return "", err
	}
	switch tag {
	case stringSource:
		span, err := l.location()
		if err != nil {
			return "", err
		}
		raw, ok := l.src.Slice(span)
		if !ok {
			return "", fmt.Errorf("string span [%d, %d) out of source bounds: %w",
				span.Start, uint64(span.Start)+uint64(span.Length), wire.ErrFormat)
		}
		return l.decodeText(raw)
	case stringEmbedded:
		length, err := l.cur.Varuint32()
		if err != nil {
			return "", err
		}
		raw, err := l.cur.ReadSlice(length)
		if err != nil {
			return "", err
		}
		return l.decodeText(raw)
	default:
		return "", fmt.Errorf("string form %d: %w", tag, ErrUnknownTag)
	}
}

// decodeText converts raw source-encoded bytes through the resolved codec.
func (l *loader) decodeText(raw []byte) (string, error) {
	decoded, err := l.codec.DecodeToUTF8(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", wire.ErrFormat, err)
	}
	return string(decoded), nil
}

// location reads a packed (start, length) pair.
func (l *loader) location() (source.Span, error) {
	start, err := l.cur.Varuint32()
	if err != nil {
		return source.Span{}, err
	}
	length, err := l.cur.Varuint32()
	if err != nil {
		return source.Span{}, err
	}
	return source.NewSpan(start, length), nil
}
