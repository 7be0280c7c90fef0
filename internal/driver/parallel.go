package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Neswisoft/ruby/internal/loader"
)

// DirResult — итог одной пары при пакетном декодировании каталога.
// Ошибки отдельной пары не прерывают прогон: они оседают в Summary.
type DirResult struct {
	Summary Summary
	Cached  bool // сводка взята из дискового кеша без декодирования
}

// ListPairs возвращает отсортированный список пар под dir со спутником
// стандартного суффикса.
func ListPairs(dir string) ([]Pair, error) {
	return ListPairsExt(dir, SerializedExt)
}

// ListPairsExt ищет пары со спутником произвольного суффикса. Суффикс
// задаётся манифестом проекта, поэтому приходит параметром.
func ListPairsExt(dir, ext string) ([]Pair, error) {
	var pairs []Pair

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			pairs = append(pairs, Pair{
				Source:     strings.TrimSuffix(path, ext),
				Serialized: path,
			})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Source < pairs[j].Source })
	return pairs, nil
}

// DecodePair декодирует одну пару, при непустом cache сначала заглядывая в
// него. Кеш — best effort: ошибка чтения считается промахом, ошибка записи
// не портит итог.
func DecodePair(pair Pair, opts loader.Options, cache *DiskCache) DirResult {
	src, blob, err := pair.Read()
	if err != nil {
		return DirResult{Summary: Summarize(pair.Source, nil, err)}
	}

	key := PairDigest(src, blob)
	var payload DiskPayload
	if ok, err := cache.Get(key, &payload); err == nil && ok {
		return DirResult{Summary: payload.Summary, Cached: true}
	}

	res, err := loader.Decode(src, blob, opts)
	sum := Summarize(pair.Source, res, err)
	_ = cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Summary: sum})
	return DirResult{Summary: sum}
}

// ParsePairs декодирует перечисленные пары параллельно. Результаты идут в
// порядке pairs независимо от порядка завершения горутин.
func ParsePairs(ctx context.Context, pairs []Pair, jobs int, opts loader.Options, cache *DiskCache) ([]DirResult, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]DirResult, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(pairs)))

	for i, pair := range pairs {
		g.Go(func(i int, pair Pair) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				results[i] = DecodePair(pair, opts, cache)
				return nil
			}
		}(i, pair))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ParseDir декодирует все пары под dir параллельно.
func ParseDir(ctx context.Context, dir string, jobs int, opts loader.Options, cache *DiskCache) ([]DirResult, error) {
	pairs, err := ListPairs(dir)
	if err != nil {
		return nil, err
	}
	return ParsePairs(ctx, pairs, jobs, opts, cache)
}
