package driver

import (
	"github.com/Neswisoft/ruby/internal/loader"
)

// Tokenize reads the pair for path and decodes the serialized token stream.
// Спутник обязан быть сериализован в режиме лексера: дерево и поток токенов
// различаются раскладкой сразу после заголовка.
func Tokenize(path string, opts loader.Options) (*loader.ParseResult, error) {
	src, blob, err := ReadPair(path)
	if err != nil {
		return nil, err
	}
	return loader.DecodeTokens(src, blob, opts)
}
