package loader

import (
	"bytes"
	"fmt"

	"github.com/Neswisoft/ruby/internal/wire"
)

// Magic opens every serialized buffer.
const Magic = "PRISM"

// Version is the only schema triple this decoder accepts. Формат не имеет
// обратной совместимости: любое другое значение — ошибка формата.
var Version = [3]byte{0, 24, 0}

// header validates the fixed 9-byte preamble: magic, version, flags.
func (l *loader) header() error {
	magic, err := l.cur.ReadSlice(uint32(len(Magic)))
	if err != nil {
		return fmt.Errorf("reading magic: %w", err)
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return fmt.Errorf("bad magic %q, want %q: %w", magic, Magic, wire.ErrFormat)
	}

	ver, err := l.cur.ReadSlice(3)
	if err != nil {
		return fmt.Errorf("reading version: %w", err)
	}
	if ver[0] != Version[0] || ver[1] != Version[1] || ver[2] != Version[2] {
		return fmt.Errorf("version %d.%d.%d not supported, want %d.%d.%d: %w",
			ver[0], ver[1], ver[2], Version[0], Version[1], Version[2], wire.ErrFormat)
	}

	flags, err := l.cur.ReadByte()
	if err != nil {
		return fmt.Errorf("reading flags: %w", err)
	}
	if flags != 0 {
		// Ненулевые флаги означают поток без локаций (только семантика).
		// Декодер требует полную форму с локациями.
		return fmt.Errorf("flags %#02x: location-free streams not supported: %w", flags, wire.ErrFormat)
	}
	return nil
}
