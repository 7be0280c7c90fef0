package wire

import "errors"

var (
	// ErrTruncated reports a read past the end of the serialized buffer.
	// The cursor never substitutes zeros or partial values for short reads.
	ErrTruncated = errors.New("truncated serialization")

	// ErrFormat reports a malformed primitive (varuint overflow, impossible
	// length, out-of-range reference) in an otherwise readable buffer.
	ErrFormat = errors.New("malformed serialization")
)
