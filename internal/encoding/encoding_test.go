package encoding

import (
	"bytes"
	"errors"
	"testing"
)

func TestResolve_Identity(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf-8", "US-ASCII", "ascii", "ASCII-8BIT", "BINARY"} {
		enc, err := Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q) = %v", name, err)
		}
		if !enc.Identity() {
			t.Errorf("Resolve(%q) should be identity", name)
		}
	}
}

func TestResolve_Known(t *testing.T) {
	names := []string{
		"Windows-1251", "Shift_JIS", "EUC-JP", "ISO-8859-1", "ISO-8859-15",
		"KOI8-R", "Big5", "GBK", "UTF-16LE", "UTF-16BE",
		// Рубишные псевдонимы.
		"SJIS", "CP932", "CP1251",
	}
	for _, name := range names {
		enc, err := Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q) = %v", name, err)
			continue
		}
		if enc.Identity() {
			t.Errorf("Resolve(%q) resolved to identity", name)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, name := range []string{"wtf-9", "UTF8-MAC", "no-such-charset"} {
		if _, err := Resolve(name); !errors.Is(err, ErrUnknown) {
			t.Errorf("Resolve(%q) = %v, want ErrUnknown", name, err)
		}
	}
}

func TestDecodeToUTF8(t *testing.T) {
	enc, err := Resolve("Windows-1251")
	if err != nil {
		t.Fatal(err)
	}
	got, err := enc.DecodeToUTF8([]byte{0xEF, 0xF0, 0xE8})
	if err != nil {
		t.Fatalf("DecodeToUTF8 = %v", err)
	}
	if string(got) != "при" {
		t.Errorf("DecodeToUTF8 = %q, want %q", got, "при")
	}
}

func TestDecodeToUTF8_IdentityAliases(t *testing.T) {
	enc, err := Resolve("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	in := []byte("пример")
	out, err := enc.DecodeToUTF8(in)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("identity decode changed bytes: %q -> %q", in, out)
	}
	if &in[0] != &out[0] {
		t.Errorf("identity decode should not copy")
	}
}
