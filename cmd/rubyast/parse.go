package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Neswisoft/ruby/internal/diagfmt"
	"github.com/Neswisoft/ruby/internal/driver"
	"github.com/Neswisoft/ruby/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.rb>",
	Short: "Decode the serialized syntax tree next to a Ruby file",
	Long:  `Parse reads a Ruby source file together with its .prism companion and prints the decoded syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("positions", false, "add line/column positions to JSON spans")
	parseCmd.Flags().Bool("verbose", false, "include verbose-level warnings")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	positions, err := cmd.Flags().GetBool("positions")
	if err != nil {
		return fmt.Errorf("failed to get positions flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	opts, err := decodeOptions(cmd)
	if err != nil {
		return err
	}

	// Каталоги целиком обрабатывает batch
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return fmt.Errorf("%s is a directory, use rubyast batch", filePath)
	}

	var timings pipeline.Timings
	decodeStart := time.Now()
	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}
	timings.Set(pipeline.StageDecode, time.Since(decodeStart))

	// Выводим диагностику парсера в stderr, если есть
	if result.HasErrors() || result.HasWarnings() {
		var colorFlag string
		colorFlag, err = cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		popts := diagfmt.PrettyOpts{
			Color:       useColor,
			ShowPreview: true,
			Verbose:     verbose,
		}
		if err = diagfmt.FormatDiagnosticsPretty(os.Stderr, filePath, result, popts); err != nil {
			return err
		}
	}

	renderStart := time.Now()
	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		err = diagfmt.FormatTreePretty(os.Stdout, result, diagfmt.PrettyOpts{Color: useColor})
	case "json":
		err = diagfmt.FormatTreeJSON(os.Stdout, result, diagfmt.JSONOpts{IncludePositions: positions})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	timings.Set(pipeline.StageRender, time.Since(renderStart))

	if showTimings(cmd) {
		pipeline.WriteTimings(os.Stdout, "parse", timings)
	}
	return nil
}
