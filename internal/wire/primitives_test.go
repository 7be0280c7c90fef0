package wire

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

// appendVaruint кодирует v в LEB128 для тестовых буферов.
func appendVaruint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

func appendVarsint(b []byte, v int64) []byte {
	return appendVaruint(b, uint64(v)<<1^uint64(v>>63))
}

func TestVaruint_Roundtrip(t *testing.T) {
	cases := []uint64{
		0, 1, 127, 128, 255, 300, 16383, 16384,
		1 << 21, 1 << 28, 1<<32 - 1, 1 << 32, 1 << 56,
		math.MaxUint64,
	}
	for _, want := range cases {
		c := NewCursor(appendVaruint(nil, want))
		got, err := c.Varuint()
		if err != nil {
			t.Fatalf("Varuint(%d) = %v", want, err)
		}
		if got != want {
			t.Errorf("Varuint = %d, want %d", got, want)
		}
		if !c.EOF() {
			t.Errorf("Varuint(%d) left %d unread bytes", want, c.Remaining())
		}
	}
}

func TestVaruint_Truncated(t *testing.T) {
	// Continuation bit set, then nothing.
	for _, buf := range [][]byte{nil, {0x80}, {0xFF, 0xFF}} {
		if _, err := NewCursor(buf).Varuint(); !errors.Is(err, ErrTruncated) {
			t.Errorf("Varuint(% x) = %v, want ErrTruncated", buf, err)
		}
	}
}

func TestVaruint_Overflow(t *testing.T) {
	// 10 байт, старший байт > 1: значение не помещается в 64 бита.
	over := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02}
	if _, err := NewCursor(over).Varuint(); !errors.Is(err, ErrFormat) {
		t.Errorf("Varuint(overflow) = %v, want ErrFormat", err)
	}
	// 11 continuation-байт подряд — слишком длинная кодировка.
	long := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, err := NewCursor(long).Varuint(); !errors.Is(err, ErrFormat) {
		t.Errorf("Varuint(too long) = %v, want ErrFormat", err)
	}
}

func TestVaruint32_Range(t *testing.T) {
	got, err := NewCursor(appendVaruint(nil, math.MaxUint32)).Varuint32()
	if err != nil || got != math.MaxUint32 {
		t.Fatalf("Varuint32(max) = %d, %v", got, err)
	}
	if _, err := NewCursor(appendVaruint(nil, math.MaxUint32+1)).Varuint32(); !errors.Is(err, ErrFormat) {
		t.Errorf("Varuint32(2^32) = %v, want ErrFormat", err)
	}
}

func TestVarsint_Roundtrip(t *testing.T) {
	cases := []int64{
		0, -1, 1, -2, 2, 63, -64, 64, -65,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
	}
	for _, want := range cases {
		got, err := NewCursor(appendVarsint(nil, want)).Varsint()
		if err != nil {
			t.Fatalf("Varsint(%d) = %v", want, err)
		}
		if got != want {
			t.Errorf("Varsint = %d, want %d", got, want)
		}
	}
}

func TestVarsint_ZigzagLayout(t *testing.T) {
	// Малые значения чередуются: 0, -1, 1, -2, 2 ...
	cases := []struct {
		raw  byte
		want int64
	}{
		{0, 0}, {1, -1}, {2, 1}, {3, -2}, {4, 2},
	}
	for _, tc := range cases {
		got, err := NewCursor([]byte{tc.raw}).Varsint()
		if err != nil || got != tc.want {
			t.Errorf("Varsint(%#x) = %d, %v, want %d", tc.raw, got, err, tc.want)
		}
	}
}

func TestVarsint32_Range(t *testing.T) {
	for _, v := range []int64{math.MinInt32, -1, 0, math.MaxInt32} {
		got, err := NewCursor(appendVarsint(nil, v)).Varsint32()
		if err != nil || int64(got) != v {
			t.Fatalf("Varsint32(%d) = %d, %v", v, got, err)
		}
	}
	for _, v := range []int64{math.MaxInt32 + 1, math.MinInt32 - 1} {
		if _, err := NewCursor(appendVarsint(nil, v)).Varsint32(); !errors.Is(err, ErrFormat) {
			t.Errorf("Varsint32(%d) = %v, want ErrFormat", v, err)
		}
	}
}

func TestUint32(t *testing.T) {
	got, err := NewCursor([]byte{0x78, 0x56, 0x34, 0x12}).Uint32()
	if err != nil || got != 0x12345678 {
		t.Fatalf("Uint32 = %#x, %v, want 0x12345678", got, err)
	}
	if _, err := NewCursor([]byte{1, 2, 3}).Uint32(); !errors.Is(err, ErrTruncated) {
		t.Errorf("short Uint32 = %v, want ErrTruncated", err)
	}
}

func TestDouble(t *testing.T) {
	cases := []float64{0, 1, -0.5, 3.14159, math.MaxFloat64, math.Inf(1), math.Inf(-1)}
	for _, want := range cases {
		var buf [8]byte
		bits := math.Float64bits(want)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		got, err := NewCursor(buf[:]).Double()
		if err != nil {
			t.Fatalf("Double(%v) = %v", want, err)
		}
		if got != want {
			t.Errorf("Double = %v, want %v", got, want)
		}
	}
	if _, err := NewCursor([]byte{1, 2, 3, 4, 5, 6, 7}).Double(); !errors.Is(err, ErrTruncated) {
		t.Errorf("short Double = %v, want ErrTruncated", err)
	}
}

func TestBigInt(t *testing.T) {
	limbs := func(sign byte, words ...uint64) []byte {
		b := []byte{sign}
		b = appendVaruint(b, uint64(len(words)))
		for _, w := range words {
			b = appendVaruint(b, w)
		}
		return b
	}

	cases := []struct {
		name string
		buf  []byte
		want string
	}{
		{"zero limbs", limbs(0), "0"},
		{"single limb", limbs(0, 42), "42"},
		{"full limb", limbs(0, 0xFFFFFFFF), "4294967295"},
		// 5 + 0<<32 + 1<<64
		{"multi limb", limbs(0, 5, 0, 1), "18446744073709551621"},
		{"negative", limbs(1, 7), "-7"},
		{"negative zero is zero", limbs(1), "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewCursor(tc.buf).BigInt()
			if err != nil {
				t.Fatalf("BigInt = %v", err)
			}
			want, _ := new(big.Int).SetString(tc.want, 10)
			if got.Cmp(want) != 0 {
				t.Errorf("BigInt = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBigInt_Truncated(t *testing.T) {
	// Заявлено две конечности, присутствует одна.
	buf := []byte{0}
	buf = appendVaruint(buf, 2)
	buf = appendVaruint(buf, 1)
	if _, err := NewCursor(buf).BigInt(); !errors.Is(err, ErrTruncated) {
		t.Errorf("BigInt(missing limb) = %v, want ErrTruncated", err)
	}
	// Счётчик конечностей больше остатка буфера целиком.
	huge := []byte{0}
	huge = appendVaruint(huge, 1<<40)
	if _, err := NewCursor(huge).BigInt(); !errors.Is(err, ErrTruncated) {
		t.Errorf("BigInt(huge count) = %v, want ErrTruncated", err)
	}
	if _, err := NewCursor(nil).BigInt(); !errors.Is(err, ErrTruncated) {
		t.Errorf("BigInt(empty) = %v, want ErrTruncated", err)
	}
}
