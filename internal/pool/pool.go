// Package pool реализует ленивый пул констант сериализованного дерева.
//
// Таблица пула лежит в конце сериализованного буфера: count записей по
// 8 байт (uint32 start, uint32 length, little-endian). Старший бит start
// выбирает подложку: установлен — байты константы лежат в самом
// сериализованном буфере по смещению start без бита; сброшен — байты
// берутся из исходника. Значения резолвятся по требованию и мемоизируются.
package pool

import (
	"fmt"

	"github.com/Neswisoft/ruby/internal/encoding"
	"github.com/Neswisoft/ruby/internal/source"
	"github.com/Neswisoft/ruby/internal/wire"
)

// serializedBit marks pool entries whose bytes live in the serialized
// buffer rather than in the source.
const serializedBit = 0x8000_0000

const entrySize = 8

// Pool resolves constant references against a parsed buffer. Ссылки в потоке
// узлов единично-индексированные: 0 зарезервирован за «отсутствует».
// Не потокобезопасен: каждый декодируемый буфер держит свой пул.
type Pool struct {
	cur    *wire.Cursor
	src    *source.Source
	codec  *encoding.Encoding
	offset uint32
	count  uint32

	values   []string
	resolved []bool
}

// New validates the pool table bounds and returns an empty, unresolved pool.
func New(cur *wire.Cursor, src *source.Source, codec *encoding.Encoding, offset, count uint32) (*Pool, error) {
	end := uint64(offset) + entrySize*uint64(count)
	if end > uint64(cur.Len()) {
		return nil, fmt.Errorf("constant pool table [%d, %d) exceeds buffer of %d bytes: %w",
			offset, end, cur.Len(), wire.ErrTruncated)
	}
	return &Pool{
		cur:      cur,
		src:      src,
		codec:    codec,
		offset:   offset,
		count:    count,
		values:   make([]string, count),
		resolved: make([]bool, count),
	}, nil
}

// Count returns the number of entries in the table.
func (p *Pool) Count() uint32 { return p.count }

// Required reads a constant reference from cur and resolves it.
// Нулевая ссылка в обязательной позиции — ошибка формата.
func (p *Pool) Required(cur *wire.Cursor) (string, error) {
	ref, err := cur.Varuint32()
	if err != nil {
		return "", err
	}
	if ref == 0 {
		return "", fmt.Errorf("constant ref 0 in required position: %w", wire.ErrFormat)
	}
	return p.Get(ref - 1)
}

// Optional reads a constant reference from cur; 0 means absent.
func (p *Pool) Optional(cur *wire.Cursor) (string, bool, error) {
	ref, err := cur.Varuint32()
	if err != nil {
		return "", false, err
	}
	if ref == 0 {
		return "", false, nil
	}
	v, err := p.Get(ref - 1)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Get resolves the 0-based entry idx, memoizing the result. Повторные
// обращения не перечитывают таблицу.
func (p *Pool) Get(idx uint32) (string, error) {
	if idx >= p.count {
		return "", fmt.Errorf("constant index %d out of range [0, %d): %w", idx, p.count, wire.ErrFormat)
	}
	if p.resolved[idx] {
		return p.values[idx], nil
	}
	base := p.offset + entrySize*idx
	start, err := p.cur.Uint32At(base)
	if err != nil {
		return "", err
	}
	length, err := p.cur.Uint32At(base + 4)
	if err != nil {
		return "", err
	}

	var raw []byte
	if start&serializedBit != 0 {
		raw, err = p.cur.SliceAt(start&^uint32(serializedBit), length)
		if err != nil {
			return "", fmt.Errorf("constant %d: %w", idx, err)
		}
	} else {
		var ok bool
		raw, ok = p.src.Slice(source.NewSpan(start, length))
		if !ok {
			return "", fmt.Errorf("constant %d: source span [%d, %d) out of bounds: %w",
				idx, start, uint64(start)+uint64(length), wire.ErrFormat)
		}
	}

	decoded, err := p.codec.DecodeToUTF8(raw)
	if err != nil {
		return "", fmt.Errorf("constant %d: %w: %v", idx, wire.ErrFormat, err)
	}

	p.values[idx] = string(decoded)
	p.resolved[idx] = true
	return p.values[idx], nil
}
