// Package pipeline orchestrates batch decoding with per-file progress events.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Neswisoft/ruby/internal/driver"
	"github.com/Neswisoft/ruby/internal/loader"
)

// RunRequest configures a batch decode over a directory of pairs.
type RunRequest struct {
	Dir      string
	Pairs    []driver.Pair // непустой список пропускает этап scan
	Jobs     int
	Decode   loader.Options
	Cache    *driver.DiskCache
	Progress ProgressSink
}

// RunResult captures per-pair outcomes and stage timings.
type RunResult struct {
	Files   []string // отображаемые имена в порядке прогона
	Results []driver.DirResult
	Timings Timings
}

// Run decodes every pair under req.Dir, reporting progress per file.
// Готовый req.Pairs позволяет вызывающему отсканировать каталог самому.
// Ошибка отдельной пары оседает в её сводке; сам Run падает только на
// обходе каталога и на отмене контекста.
func Run(ctx context.Context, req *RunRequest) (RunResult, error) {
	var result RunResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing run request")
	}

	pairs := req.Pairs
	if pairs == nil {
		scanStart := time.Now()
		emitStage(req.Progress, nil, StageScan, StatusWorking, nil, 0)
		listed, err := driver.ListPairs(req.Dir)
		if err != nil {
			emitStage(req.Progress, nil, StageScan, StatusError, err, 0)
			return result, err
		}
		pairs = listed
		result.Timings.Set(StageScan, time.Since(scanStart))
		emitStage(req.Progress, nil, StageScan, StatusDone, nil, result.Timings.Duration(StageScan))
	}

	display := DisplayPaths(pairs, req.Dir)
	result.Files = display
	if len(pairs) == 0 {
		return result, nil
	}

	emitQueued(req.Progress, display)

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]driver.DirResult, len(pairs))
	decodeStart := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(pairs)))

	for i, pair := range pairs {
		g.Go(func(i int, pair driver.Pair) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				name := display[i]
				start := time.Now()
				emitFile(req.Progress, name, StageDecode, StatusWorking, nil, 0)

				res := driver.DecodePair(pair, req.Decode, req.Cache)
				results[i] = res

				status := StatusDone
				if res.Summary.Failed {
					status = StatusError
				}
				emitFile(req.Progress, name, StageDecode, status, nil, time.Since(start))
				return nil
			}
		}(i, pair))
	}

	err := g.Wait()
	result.Results = results
	result.Timings.Set(StageDecode, time.Since(decodeStart))
	return result, err
}

// DisplayPaths converts pair source paths to names relative to base,
// preserving order and count. Пути вне base остаются как есть.
func DisplayPaths(pairs []driver.Pair, base string) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		name := p.Source
		if base != "" {
			if rel, err := filepath.Rel(base, name); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
				name = rel
			}
		}
		out[i] = filepath.ToSlash(name)
	}
	return out
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageDecode, Status: StatusQueued})
	}
}

// emitStage reports an overall event, then the same event for every file.
func emitStage(sink ProgressSink, files []string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	}
}

func emitFile(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
