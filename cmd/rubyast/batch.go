package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Neswisoft/ruby/internal/driver"
	"github.com/Neswisoft/ruby/internal/pipeline"
)

// cacheAppName задаёт каталог под XDG_CACHE_HOME для сводок пар.
const cacheAppName = "rubyast"

var batchCmd = &cobra.Command{
	Use:   "batch [flags] [directory]",
	Short: "Decode every serialized pair under a directory",
	Long:  "Batch walks a directory for source files with serialized companions, decodes them in parallel and prints one summary line per pair. Без аргумента каталоги берутся из rubyast.toml.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
	batchCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	batchCmd.Flags().Bool("cache", false, "memoize pair summaries on disk")
}

var (
	batchOKColor   = color.New(color.FgGreen, color.Bold)
	batchFailColor = color.New(color.FgRed, color.Bold)
)

type batchPairJSON struct {
	Path     string `json:"path"`
	Root     string `json:"root,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Comments int    `json:"comments,omitempty"`
	Errors   int    `json:"errors,omitempty"`
	Warnings int    `json:"warnings,omitempty"`
	Cached   bool   `json:"cached,omitempty"`
	Failed   bool   `json:"failed,omitempty"`
	Message  string `json:"message,omitempty"`
}

type batchOutput struct {
	Pairs  []batchPairJSON `json:"pairs"`
	Count  int             `json:"count"`
	Failed int             `json:"failed"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	opts, err := decodeOptions(cmd)
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	roots, ext, err := resolveBatchRoots(args)
	if err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache(cacheAppName)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	// Прогресс-интерфейс рисует только человекочитаемый режим.
	useTUI := shouldUseTUI(uiModeValue) && format == "pretty"

	var (
		scanTotal   time.Duration
		decodeTotal time.Duration
		renderTotal time.Duration

		total, failed, fromCache int
	)
	jsonOut := batchOutput{Pairs: []batchPairJSON{}}

	for _, root := range roots {
		scanStart := time.Now()
		pairs, err := driver.ListPairsExt(root, ext)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", root, err)
		}
		scanTotal += time.Since(scanStart)

		display := pipeline.DisplayPaths(pairs, root)
		req := pipeline.RunRequest{
			Dir:    root,
			Pairs:  pairs,
			Jobs:   jobs,
			Decode: opts,
			Cache:  cache,
		}

		var res pipeline.RunResult
		decodeStart := time.Now()
		if useTUI && len(pairs) > 0 {
			res, err = runBatchWithUI(cmd.Context(), "rubyast batch", display, &req)
		} else {
			res, err = pipeline.Run(cmd.Context(), &req)
		}
		decodeTotal += time.Since(decodeStart)
		if err != nil {
			return err
		}

		renderStart := time.Now()
		switch format {
		case "pretty":
			if !quiet && len(roots) > 1 {
				if _, printErr := fmt.Fprintf(os.Stdout, "== %s ==\n", root); printErr != nil {
					return printErr
				}
			}
			if err := writeBatchPretty(os.Stdout, res, useColor); err != nil {
				return err
			}
		case "json":
			collectBatchJSON(&jsonOut, res)
		}
		renderTotal += time.Since(renderStart)

		for _, r := range res.Results {
			total++
			if r.Summary.Failed {
				failed++
			}
			if r.Cached {
				fromCache++
			}
		}
	}

	if format == "json" {
		jsonOut.Count = total
		jsonOut.Failed = failed
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(jsonOut); err != nil {
			return err
		}
	} else if !quiet {
		tail := fmt.Sprintf("%d pairs, %d failed", total, failed)
		if fromCache > 0 {
			tail += fmt.Sprintf(", %d cached", fromCache)
		}
		if _, err := fmt.Fprintln(os.Stdout, tail); err != nil {
			return err
		}
	}

	if showTimings(cmd) {
		var timings pipeline.Timings
		timings.Set(pipeline.StageScan, scanTotal)
		timings.Set(pipeline.StageDecode, decodeTotal)
		timings.Set(pipeline.StageRender, renderTotal)
		pipeline.WriteTimings(os.Stdout, "batch", timings)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pairs failed", failed, total)
	}
	return nil
}

// writeBatchPretty печатает по строке на пару в порядке прогона.
func writeBatchPretty(out io.Writer, res pipeline.RunResult, useColor bool) error {
	for i, r := range res.Results {
		name := r.Summary.Path
		if i < len(res.Files) {
			name = res.Files[i]
		}

		// Пробелы выравнивают колонку до раскраски: ANSI-коды ломают %-4s.
		mark := "ok  "
		if r.Summary.Failed {
			mark = "fail"
		}
		if useColor {
			if r.Summary.Failed {
				mark = batchFailColor.Sprint(mark)
			} else {
				mark = batchOKColor.Sprint(mark)
			}
		}

		var line string
		if r.Summary.Failed {
			line = fmt.Sprintf("%s %s: %s", mark, name, r.Summary.Message)
		} else {
			line = fmt.Sprintf("%s %s: %s, %s", mark, name, r.Summary.RootKind, r.Summary.Encoding)
			if r.Summary.Errors > 0 || r.Summary.Warnings > 0 {
				line += fmt.Sprintf(", %d errors, %d warnings", r.Summary.Errors, r.Summary.Warnings)
			}
			if r.Cached {
				line += " (cached)"
			}
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func collectBatchJSON(out *batchOutput, res pipeline.RunResult) {
	for i, r := range res.Results {
		name := r.Summary.Path
		if i < len(res.Files) {
			name = res.Files[i]
		}
		out.Pairs = append(out.Pairs, batchPairJSON{
			Path:     name,
			Root:     r.Summary.RootKind,
			Encoding: r.Summary.Encoding,
			Comments: r.Summary.Comments,
			Errors:   r.Summary.Errors,
			Warnings: r.Summary.Warnings,
			Cached:   r.Cached,
			Failed:   r.Summary.Failed,
			Message:  r.Summary.Message,
		})
	}
}
