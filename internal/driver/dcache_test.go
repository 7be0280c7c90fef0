package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/testkit"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenDiskCache("rubyast-test")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPairDigest(t *testing.T) {
	a := PairDigest([]byte("src"), []byte("blob"))
	if a != PairDigest([]byte("src"), []byte("blob")) {
		t.Fatal("digest must be deterministic")
	}
	if a == PairDigest([]byte("src2"), []byte("blob")) {
		t.Fatal("source change must change the digest")
	}
	if a == PairDigest([]byte("src"), []byte("blob2")) {
		t.Fatal("blob change must change the digest")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c := testCache(t)

	key := PairDigest([]byte("true\n"), []byte{1, 2, 3})
	in := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Summary: Summary{Path: "x.rb", Encoding: "UTF-8", RootKind: "TrueNode"},
	}
	if err := c.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out DiskPayload
	ok, err := c.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if out.Summary != in.Summary {
		t.Errorf("summary = %+v, want %+v", out.Summary, in.Summary)
	}

	var miss DiskPayload
	if ok, err := c.Get(PairDigest([]byte("other"), nil), &miss); err != nil || ok {
		t.Fatalf("unknown key: Get = %v, %v", ok, err)
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	c := testCache(t)

	key := PairDigest([]byte("a"), []byte("b"))
	stale, err := msgpack.Marshal(&DiskPayload{Schema: diskCacheSchemaVersion + 1})
	if err != nil {
		t.Fatal(err)
	}
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, stale, 0o644); err != nil {
		t.Fatal(err)
	}

	var out DiskPayload
	if ok, err := c.Get(key, &out); err != nil || ok {
		t.Fatalf("stale schema must read as a miss, got %v, %v", ok, err)
	}
}

func TestDiskCacheNil(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Digest{}, &DiskPayload{}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if ok, err := c.Get(Digest{}, &out); err != nil || ok {
		t.Fatalf("nil cache: Get = %v, %v", ok, err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	c := testCache(t)
	key := PairDigest([]byte("x"), []byte("y"))
	if err := c.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if ok, err := c.Get(key, &out); err != nil || ok {
		t.Fatalf("after DropAll: Get = %v, %v", ok, err)
	}
}

func TestDecodePairCached(t *testing.T) {
	c := testCache(t)
	src, blob := testkit.MinimalTreePair()
	path := writePair(t, t.TempDir(), "true.rb", src, blob)

	first := DecodePair(PairFor(path), loader.Options{}, c)
	if first.Cached {
		t.Fatal("first decode must be fresh")
	}
	if first.Summary.Failed {
		t.Fatalf("decode failed: %s", first.Summary.Message)
	}

	second := DecodePair(PairFor(path), loader.Options{}, c)
	if !second.Cached {
		t.Fatal("second decode must come from the cache")
	}
	if second.Summary != first.Summary {
		t.Errorf("cached summary = %+v, want %+v", second.Summary, first.Summary)
	}

	// Правка исходника меняет ключ пары.
	if err := os.WriteFile(path, []byte("true # x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	third := DecodePair(PairFor(path), loader.Options{}, c)
	if third.Cached {
		t.Error("changed source must bypass the cache")
	}
}
