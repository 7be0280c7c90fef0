// Package loader decodes the versioned binary serialization of a parsed
// Ruby program back into the in-memory tree and token forms.
//
// Буфер самодостаточен только вместе с исходником: строки, константы и
// локации ссылаются в исходные байты. Декодер строг — любое отклонение от
// схемы 0.24.0 обрывает декодирование без частичного результата.
package loader

import (
	"fmt"
	"sync"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/encoding"
	"github.com/Neswisoft/ruby/internal/pool"
	"github.com/Neswisoft/ruby/internal/source"
	"github.com/Neswisoft/ruby/internal/token"
	"github.com/Neswisoft/ruby/internal/wire"
)

// DefaultMaxDepth bounds node recursion when Options leave MaxDepth unset.
// Настоящие деревья глубже пары сотен уровней не встречаются; лимит ловит
// злонамеренно вложенные буферы до исчерпания стека.
const DefaultMaxDepth = 10_000

// Options tunes a single decode call.
type Options struct {
	// MaxDepth bounds node nesting. Zero or negative selects
	// DefaultMaxDepth.
	MaxDepth int
}

// loader carries the state of one decode pass over one buffer.
type loader struct {
	cur   *wire.Cursor
	src   *source.Source
	codec *encoding.Encoding
	pool  *pool.Pool

	depth    int
	maxDepth int
}

func newLoader(content, buf []byte, opts Options) *loader {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &loader{
		cur:      wire.NewCursor(buf),
		src:      source.New(content),
		maxDepth: maxDepth,
	}
}

// Схема проверяется один раз на процесс: повреждённая таблица полей — это
// ошибка сборки, а не конкретного буфера.
var schemaReady = sync.OnceValue(ast.ValidateSchema)

// Decode reconstructs the syntax tree serialized into buf. src must hold
// the exact source bytes the producer parsed; the tree borrows slices of it.
func Decode(src, buf []byte, opts Options) (*ParseResult, error) {
	if err := schemaReady(); err != nil {
		return nil, err
	}
	l := newLoader(src, buf, opts)
	if err := l.header(); err != nil {
		return nil, err
	}
	if err := l.sourceFields(); err != nil {
		return nil, err
	}
	res := &ParseResult{Source: l.src}
	if err := l.metadata(res); err != nil {
		return nil, err
	}

	poolOffset, err := l.cur.Uint32()
	if err != nil {
		return nil, fmt.Errorf("reading constant pool offset: %w", err)
	}
	poolCount, err := l.cur.Varuint32()
	if err != nil {
		return nil, fmt.Errorf("reading constant pool count: %w", err)
	}
	l.pool, err = pool.New(l.cur, l.src, l.codec, poolOffset, poolCount)
	if err != nil {
		return nil, err
	}

	root, err := l.node()
	if err != nil {
		return nil, err
	}
	res.Root = root

	// Поток узлов обязан закончиться ровно на таблице пула, а таблица —
	// ровно на конце буфера.
	switch {
	case l.cur.Pos() < poolOffset:
		return nil, fmt.Errorf("%d unread bytes between root node and constant pool: %w",
			poolOffset-l.cur.Pos(), ErrTrailingData)
	case l.cur.Pos() > poolOffset:
		return nil, fmt.Errorf("root node runs %d bytes into constant pool table: %w",
			l.cur.Pos()-poolOffset, wire.ErrFormat)
	}
	if end := uint64(poolOffset) + 8*uint64(poolCount); end != uint64(l.cur.Len()) {
		return nil, fmt.Errorf("%d bytes after constant pool table: %w",
			uint64(l.cur.Len())-end, ErrTrailingData)
	}
	return res, nil
}

// DecodeTokens reconstructs the flat token stream serialized into buf.
// Токены пишутся до полей исходника, поэтому порядок чтения другой:
// заголовок, токены, кодировка, стартовая строка, смещения строк, метаданные.
func DecodeTokens(src, buf []byte, opts Options) (*ParseResult, error) {
	l := newLoader(src, buf, opts)
	if err := l.header(); err != nil {
		return nil, err
	}

	var tokens []token.Token
	for {
		raw, err := l.cur.Varuint32()
		if err != nil {
			return nil, fmt.Errorf("token %d type: %w", len(tokens), err)
		}
		if raw == uint32(token.Terminator) {
			break
		}
		if raw > uint32(token.TypeCount) {
			return nil, fmt.Errorf("token %d: type %d: %w", len(tokens), raw, ErrUnknownTag)
		}
		span, err := l.location()
		if err != nil {
			return nil, fmt.Errorf("token %d location: %w", len(tokens), err)
		}
		state, err := l.cur.Varuint32()
		if err != nil {
			return nil, fmt.Errorf("token %d lex state: %w", len(tokens), err)
		}
		tokens = append(tokens, token.Token{Type: token.Type(raw), Span: span, LexState: state})
	}

	if err := l.sourceFields(); err != nil {
		return nil, err
	}
	res := &ParseResult{Source: l.src, Tokens: tokens}
	if err := l.metadata(res); err != nil {
		return nil, err
	}
	if !l.cur.EOF() {
		return nil, fmt.Errorf("%d bytes after token stream metadata: %w", l.cur.Remaining(), ErrTrailingData)
	}
	return res, nil
}

// sourceFields decodes the staged source fields: encoding name, start line,
// line offset table. The source is immutable once this returns.
func (l *loader) sourceFields() error {
	nameLen, err := l.cur.Varuint32()
	if err != nil {
		return fmt.Errorf("reading encoding name length: %w", err)
	}
	name, err := l.cur.ReadSlice(nameLen)
	if err != nil {
		return fmt.Errorf("reading encoding name: %w", err)
	}
	codec, err := encoding.Resolve(string(name))
	if err != nil {
		return fmt.Errorf("encoding %q: %w", name, err)
	}
	l.src.EncodingName = string(name)
	l.codec = codec

	startLine, err := l.cur.Varsint32()
	if err != nil {
		return fmt.Errorf("reading start line: %w", err)
	}
	l.src.StartLine = startLine

	count, err := l.cur.Varuint32()
	if err != nil {
		return fmt.Errorf("reading line offset count: %w", err)
	}
	// Каждое смещение занимает минимум байт; счётчик больше хвоста — мусор.
	if count > l.cur.Remaining() {
		return fmt.Errorf("line offset table with %d entries, %d bytes remain: %w",
			count, l.cur.Remaining(), wire.ErrTruncated)
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		off, err := l.cur.Varuint32()
		if err != nil {
			return fmt.Errorf("line offset %d: %w", i, err)
		}
		offsets[i] = off
	}
	l.src.LineOffsets = offsets
	return nil
}
