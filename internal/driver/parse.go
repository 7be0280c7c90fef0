// Package driver exposes file-level entry points over the decoder: reading a
// source file together with its serialized companion, decoding whole
// directories in parallel and memoizing per-pair summaries on disk.
//
// Пара на диске: <file> — исходник, <file>.prism — сериализованное дерево
// (или поток токенов, если продюсер работал в режиме лексера).
package driver

import (
	"fmt"
	"os"

	"github.com/Neswisoft/ruby/internal/loader"
)

// SerializedExt is the suffix of the companion file next to a source file.
const SerializedExt = ".prism"

// SerializedPath returns the companion path for the given source file.
func SerializedPath(path string) string {
	return path + SerializedExt
}

// Pair names a source file and its serialized companion on disk.
type Pair struct {
	Source     string
	Serialized string
}

// PairFor returns the pair for a source path with the default companion suffix.
func PairFor(path string) Pair {
	return Pair{Source: path, Serialized: SerializedPath(path)}
}

// Read loads both halves of the pair.
func (p Pair) Read() (src, blob []byte, err error) {
	src, err = os.ReadFile(p.Source) // #nosec G304 -- path is the CLI argument
	if err != nil {
		return nil, nil, fmt.Errorf("read source: %w", err)
	}
	blob, err = os.ReadFile(p.Serialized) // #nosec G304
	if err != nil {
		return nil, nil, fmt.Errorf("read serialized tree: %w", err)
	}
	return src, blob, nil
}

// ReadPair loads a source file and its default-named companion.
func ReadPair(path string) (src, blob []byte, err error) {
	return PairFor(path).Read()
}

// Parse reads the pair for path and decodes the serialized tree.
func Parse(path string, opts loader.Options) (*loader.ParseResult, error) {
	src, blob, err := ReadPair(path)
	if err != nil {
		return nil, err
	}
	return loader.Decode(src, blob, opts)
}
