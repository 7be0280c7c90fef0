package fuzztests

import (
	"testing"

	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/testkit"
)

// FuzzDecode проверяет, что декодер дерева не паникует и детерминирован
// на произвольных парах (исходник, буфер).
func FuzzDecode(f *testing.F) {
	addPairSeeds(f, testkit.MinimalTreePair)

	f.Fuzz(func(t *testing.T, src, blob []byte) {
		src = clampInput(src)
		blob = clampInput(blob)

		res, err := loader.Decode(src, blob, loader.Options{})
		if err == nil && (res == nil || res.Root == nil) {
			t.Fatal("successful decode must produce a root node")
		}

		// Повторный прогон обязан дать тот же исход.
		res2, err2 := loader.Decode(src, blob, loader.Options{})
		if (err == nil) != (err2 == nil) {
			t.Fatalf("decode is not deterministic: %v vs %v", err, err2)
		}
		if err == nil && res.Root.Kind != res2.Root.Kind {
			t.Fatalf("root kind differs between runs: %v vs %v", res.Root.Kind, res2.Root.Kind)
		}
	})
}

// FuzzDecodeTokens то же для буферов режима лексера.
func FuzzDecodeTokens(f *testing.F) {
	addPairSeeds(f, testkit.MinimalTokenPair)

	f.Fuzz(func(t *testing.T, src, blob []byte) {
		src = clampInput(src)
		blob = clampInput(blob)

		res, err := loader.DecodeTokens(src, blob, loader.Options{})
		if err != nil {
			return
		}
		if res == nil {
			t.Fatal("nil result without error")
		}
		for i, tok := range res.Tokens {
			if !tok.Type.Valid() {
				t.Fatalf("token %d has invalid type %d", i, tok.Type)
			}
		}
	})
}
