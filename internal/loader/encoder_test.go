package loader

import (
	"encoding/binary"
	"math"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/token"
)

// builder собирает сериализованные буферы для тестов; это минимальный
// зеркальный энкодер схемы.
type builder struct {
	buf []byte
}

func (b *builder) bytes(p ...byte) *builder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *builder) raw(p []byte) *builder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *builder) str(s string) *builder {
	b.buf = append(b.buf, s...)
	return b
}

func (b *builder) varuint(v uint64) *builder {
	for v >= 0x80 {
		b.buf = append(b.buf, byte(v)|0x80)
		v >>= 7
	}
	b.buf = append(b.buf, byte(v))
	return b
}

func (b *builder) varsint(v int64) *builder {
	return b.varuint(uint64(v)<<1 ^ uint64(v>>63))
}

func (b *builder) u32(v uint32) *builder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *builder) f64(v float64) *builder {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// header appends the 9-byte preamble of the supported schema version.
func (b *builder) header() *builder {
	return b.str(Magic).bytes(Version[0], Version[1], Version[2], 0)
}

// sourceFields appends encoding name, start line, and line offset table.
func (b *builder) sourceFields(encoding string, startLine int64, lineOffs ...uint32) *builder {
	b.varuint(uint64(len(encoding))).str(encoding)
	b.varsint(startLine)
	b.varuint(uint64(len(lineOffs)))
	for _, off := range lineOffs {
		b.varuint(uint64(off))
	}
	return b
}

// emptyMeta appends a metadata block with no comments, no magic comments,
// no data location, and no diagnostics.
func (b *builder) emptyMeta() *builder {
	return b.varuint(0).varuint(0).bytes(0).varuint(0).varuint(0)
}

// loc appends a packed (start, length) pair.
func (b *builder) loc(start, length uint32) *builder {
	return b.varuint(uint64(start)).varuint(uint64(length))
}

// node appends a node header: the kind tag plus its location.
func (b *builder) node(k ast.Kind, start, length uint32) *builder {
	return b.bytes(byte(k)).loc(start, length)
}

// tok appends one serialized token record.
func (b *builder) tok(t token.Type, start, length, state uint32) *builder {
	return b.varuint(uint64(t)).loc(start, length).varuint(uint64(state))
}

// finishTree appends the pool header, the node stream, and the pool entry
// table, computing the pool offset so the table lands exactly at buffer end.
func finishTree(b *builder, nodeStream []byte, entries ...[2]uint32) []byte {
	var count builder
	count.varuint(uint64(len(entries)))
	poolOff := len(b.buf) + 4 + len(count.buf) + len(nodeStream)
	b.u32(uint32(poolOff)).raw(count.buf).raw(nodeStream)
	for _, e := range entries {
		b.u32(e[0]).u32(e[1])
	}
	return b.buf
}

// tree assembles a complete tree-mode buffer: standard header, UTF-8 source
// fields, empty metadata, the given node stream, and the pool table.
func tree(nodeStream []byte, entries ...[2]uint32) []byte {
	var b builder
	b.header().sourceFields("UTF-8", 1).emptyMeta()
	return finishTree(&b, nodeStream, entries...)
}
