package loader

import (
	"errors"

	"github.com/Neswisoft/ruby/internal/wire"
)

// Сигнальные ошибки декодера. Все ошибки загрузчика оборачивают одну из них
// и проверяются через errors.Is; частичных результатов не бывает.
var (
	// ErrFormat reports malformed serialization: bad magic, version or
	// flags mismatch, broken varuints, out-of-range indexes.
	ErrFormat = wire.ErrFormat

	// ErrTruncated reports a read past the end of the buffer.
	ErrTruncated = wire.ErrTruncated

	// ErrUnknownTag reports a tag byte the schema tables do not map:
	// node kind, string form, diagnostic type or level.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrTrailingData reports bytes left over after a complete decode.
	ErrTrailingData = errors.New("trailing data after decode")

	// ErrTooDeep reports node nesting past Options.MaxDepth.
	ErrTooDeep = errors.New("node nesting too deep")
)
