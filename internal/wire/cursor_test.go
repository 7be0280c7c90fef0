package wire

import (
	"errors"
	"testing"
)

func TestCursor_ReadByte(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	b, err := c.ReadByte()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadByte() = %v, %v, want 0x01", b, err)
	}
	b, err = c.ReadByte()
	if err != nil || b != 0x02 {
		t.Fatalf("ReadByte() = %v, %v, want 0x02", b, err)
	}
	if !c.EOF() {
		t.Errorf("cursor should be at EOF after two reads")
	}
	if _, err = c.ReadByte(); !errors.Is(err, ErrTruncated) {
		t.Errorf("ReadByte() past end = %v, want ErrTruncated", err)
	}
}

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0xAB})

	for i := 0; i < 3; i++ {
		b, err := c.PeekByte()
		if err != nil || b != 0xAB {
			t.Fatalf("PeekByte() #%d = %v, %v, want 0xAB", i, b, err)
		}
	}
	if c.Pos() != 0 {
		t.Errorf("PeekByte() moved cursor to %d", c.Pos())
	}
}

func TestCursor_UnreadByte(t *testing.T) {
	c := NewCursor([]byte{0x10, 0x20})

	if err := c.UnreadByte(); !errors.Is(err, ErrFormat) {
		t.Errorf("UnreadByte() at start = %v, want ErrFormat", err)
	}

	if _, err := c.ReadByte(); err != nil {
		t.Fatalf("ReadByte() = %v", err)
	}
	if err := c.UnreadByte(); err != nil {
		t.Fatalf("UnreadByte() = %v", err)
	}
	b, err := c.ReadByte()
	if err != nil || b != 0x10 {
		t.Errorf("ReadByte() after unread = %v, %v, want 0x10", b, err)
	}
}

func TestCursor_ReadSlice(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	c := NewCursor(buf)

	got, err := c.ReadSlice(3)
	if err != nil {
		t.Fatalf("ReadSlice(3) = %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("ReadSlice(3) = %v, want [1 2 3]", got)
	}
	// Срез не копируется.
	if &got[0] != &buf[0] {
		t.Errorf("ReadSlice should alias the underlying buffer")
	}
	if _, err := c.ReadSlice(3); !errors.Is(err, ErrTruncated) {
		t.Errorf("short ReadSlice = %v, want ErrTruncated", err)
	}
	// После неудачного чтения позиция не двигается.
	if c.Pos() != 3 {
		t.Errorf("failed read moved cursor to %d", c.Pos())
	}
}

func TestCursor_AbsoluteReads(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0x78, 0x56, 0x34, 0x12, 0xFF})

	v, err := c.Uint32At(2)
	if err != nil {
		t.Fatalf("Uint32At(2) = %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("Uint32At(2) = %#x, want 0x12345678", v)
	}
	if c.Pos() != 0 {
		t.Errorf("absolute read moved cursor to %d", c.Pos())
	}

	if _, err := c.Uint32At(4); !errors.Is(err, ErrTruncated) {
		t.Errorf("Uint32At(4) = %v, want ErrTruncated", err)
	}
	if _, err := c.SliceAt(7, 1); !errors.Is(err, ErrTruncated) {
		t.Errorf("SliceAt(7, 1) = %v, want ErrTruncated", err)
	}
	// Переполнение off+n тоже усечение.
	if _, err := c.SliceAt(0xFFFFFFFF, 0xFFFFFFFF); !errors.Is(err, ErrTruncated) {
		t.Errorf("overflowing SliceAt = %v, want ErrTruncated", err)
	}
}

func TestCursor_Skip(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if err := c.Skip(2); err != nil {
		t.Fatalf("Skip(2) = %v", err)
	}
	if c.Pos() != 2 {
		t.Errorf("Pos() after Skip(2) = %d, want 2", c.Pos())
	}
	if err := c.Skip(2); !errors.Is(err, ErrTruncated) {
		t.Errorf("Skip past end = %v, want ErrTruncated", err)
	}
}
