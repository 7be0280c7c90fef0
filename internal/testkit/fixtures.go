// Package testkit provides tiny serialized fixtures and structural checks
// shared by tests in several packages.
package testkit

import (
	"encoding/binary"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/token"
)

// AppendVaruint appends v in LEB128 form.
func AppendVaruint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// MinimalTreePair returns a source and a serialized tree holding a single
// TrueNode spanning the keyword.
func MinimalTreePair() (src, blob []byte) {
	src = []byte("true\n")

	blob = append(blob, "PRISM"...)
	blob = append(blob, 0, 24, 0, 0) // версия и нулевые флаги
	blob = append(blob, 5)
	blob = append(blob, "UTF-8"...)
	blob = append(blob, 2)             // начальная строка 1 (zigzag)
	blob = append(blob, 1, 0)          // одно смещение строки: 0
	blob = append(blob, 0, 0, 0, 0, 0) // пустые метаданные

	node := []byte{byte(ast.KindTrue), 0, 4}
	poolOff := uint32(len(blob)) + 4 + 1 + uint32(len(node))
	blob = binary.LittleEndian.AppendUint32(blob, poolOff)
	blob = append(blob, 0) // пул констант пуст
	blob = append(blob, node...)
	return src, blob
}

// MinimalTokenPair returns a source and a serialized token stream for it.
func MinimalTokenPair() (src, blob []byte) {
	src = []byte("true\n")

	blob = append(blob, "PRISM"...)
	blob = append(blob, 0, 24, 0, 0)

	appendTok := func(tt token.Type, start, length, state uint64) {
		blob = AppendVaruint(blob, uint64(tt))
		blob = AppendVaruint(blob, start)
		blob = AppendVaruint(blob, length)
		blob = AppendVaruint(blob, state)
	}
	appendTok(token.KeywordTrue, 0, 4, 1)
	appendTok(token.Newline, 4, 1, 0)
	appendTok(token.EOF, 5, 0, 0)
	blob = append(blob, 0) // ограничитель потока

	blob = append(blob, 5)
	blob = append(blob, "UTF-8"...)
	blob = append(blob, 2)
	blob = append(blob, 1, 0)
	blob = append(blob, 0, 0, 0, 0, 0)
	return src, blob
}
