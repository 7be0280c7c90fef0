package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"fortio.org/safecast"
)

// Варинты в потоке — LEB128; длиннее 10 байт быть не могут.
const maxVaruintBytes = 10

// Varuint reads an LEB128-encoded unsigned integer. Values wider than 64
// bits are rejected rather than silently wrapped.
func (c *Cursor) Varuint() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxVaruintBytes; i++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < 0x80 {
			if i == maxVaruintBytes-1 && b > 1 {
				break
			}
			return result | uint64(b)<<shift, nil
		}
		result |= uint64(b&0x7F) << shift
		shift += 7
	}
	return 0, fmt.Errorf("varuint wider than 64 bits: %w", ErrFormat)
}

// Varuint32 reads a varuint that the schema constrains to 32 bits
// (node flags, local variable depth, line offsets).
func (c *Cursor) Varuint32() (uint32, error) {
	n, err := c.Varuint()
	if err != nil {
		return 0, err
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("varuint %d wider than 32 bits: %w", n, ErrFormat)
	}
	return v, nil
}

// Varsint reads a zig-zag-encoded signed integer.
func (c *Cursor) Varsint() (int64, error) {
	n, err := c.Varuint()
	if err != nil {
		return 0, err
	}
	return int64(n>>1) ^ -int64(n&1), nil
}

// Varsint32 reads a zig-zag-encoded signed integer constrained to 32 bits
// (the start line).
func (c *Cursor) Varsint32() (int32, error) {
	n, err := c.Varsint()
	if err != nil {
		return 0, err
	}
	v, err := safecast.Conv[int32](n)
	if err != nil {
		return 0, fmt.Errorf("varsint %d wider than 32 bits: %w", n, ErrFormat)
	}
	return v, nil
}

// Uint32 reads a fixed-width little-endian uint32.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.ReadSlice(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Double reads a little-endian IEEE-754 double.
func (c *Cursor) Double() (float64, error) {
	b, err := c.ReadSlice(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// BigInt reads an arbitrary-precision signed integer: a sign byte (zero
// means positive), a limb count, then that many varuint-encoded 32-bit
// limbs, least significant first.
func (c *Cursor) BigInt() (*big.Int, error) {
	sign, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	count, err := c.Varuint()
	if err != nil {
		return nil, err
	}
	// Каждый лимб занимает минимум один байт.
	if count > uint64(c.Remaining()) {
		return nil, fmt.Errorf("big integer with %d limbs, %d bytes remain: %w", count, c.Remaining(), ErrTruncated)
	}
	limbs := make([]uint32, count)
	for i := range limbs {
		limb, err := c.Varuint32()
		if err != nil {
			return nil, err
		}
		limbs[i] = limb
	}
	value := new(big.Int)
	word := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		value.Lsh(value, 32)
		value.Or(value, word.SetUint64(uint64(limbs[i])))
	}
	if sign != 0 {
		value.Neg(value)
	}
	return value, nil
}
