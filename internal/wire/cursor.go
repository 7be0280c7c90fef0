package wire

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor является позицией в сериализованном буфере.
// It advances monotonically through an in-memory buffer; the only backwards
// movement allowed is a one-byte pushback used to peek at optional node tags.
type Cursor struct {
	buf []byte
	off uint32
}

// NewCursor wraps a fully materialized serialized buffer.
func NewCursor(buf []byte) *Cursor {
	// Пул констант адресуется 32-битными смещениями.
	if _, err := safecast.Conv[uint32](len(buf)); err != nil {
		panic(fmt.Errorf("serialized buffer overflow: %w", err))
	}
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() uint32 {
	return c.off
}

// Len returns the total buffer length.
func (c *Cursor) Len() uint32 {
	return uint32(len(c.buf))
}

// EOF reports whether the cursor consumed the whole buffer.
func (c *Cursor) EOF() bool {
	return c.off >= c.Len()
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() uint32 {
	return c.Len() - c.off
}

// ReadByte reads the next byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.EOF() {
		return 0, fmt.Errorf("read byte at %d: %w", c.off, ErrTruncated)
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

// PeekByte reads the next byte without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	if c.EOF() {
		return 0, fmt.Errorf("peek byte at %d: %w", c.off, ErrTruncated)
	}
	return c.buf[c.off], nil
}

// UnreadByte pushes the most recently read byte back onto the cursor.
func (c *Cursor) UnreadByte() error {
	if c.off == 0 {
		return fmt.Errorf("unread at start of buffer: %w", ErrFormat)
	}
	c.off--
	return nil
}

// ReadSlice returns the next n bytes without copying and advances past them.
// The slice aliases the serialized buffer and must be treated as read-only.
func (c *Cursor) ReadSlice(n uint32) ([]byte, error) {
	if n > c.Remaining() {
		return nil, fmt.Errorf("read %d bytes at %d, %d remain: %w", n, c.off, c.Remaining(), ErrTruncated)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances the cursor past n bytes.
func (c *Cursor) Skip(n uint32) error {
	_, err := c.ReadSlice(n)
	return err
}

// SliceAt returns n bytes starting at an absolute offset without moving the
// cursor. Used for the constant pool table, which lives past the node stream.
func (c *Cursor) SliceAt(off, n uint32) ([]byte, error) {
	end := uint64(off) + uint64(n)
	if end > uint64(len(c.buf)) {
		return nil, fmt.Errorf("read %d bytes at absolute %d in %d-byte buffer: %w", n, off, len(c.buf), ErrTruncated)
	}
	return c.buf[off : off+n], nil
}

// Uint32At reads a little-endian uint32 at an absolute offset without moving
// the cursor.
func (c *Cursor) Uint32At(off uint32) (uint32, error) {
	b, err := c.SliceAt(off, 4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}
