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

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.rb>",
	Short: "Decode the serialized token stream next to a Ruby file",
	Long:  `Tokenize reads a Ruby source file together with a companion serialized in lexer mode and prints the token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("positions", false, "add line/column positions to JSON spans")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	positions, err := cmd.Flags().GetBool("positions")
	if err != nil {
		return fmt.Errorf("failed to get positions flag: %w", err)
	}
	opts, err := decodeOptions(cmd)
	if err != nil {
		return err
	}

	var timings pipeline.Timings
	decodeStart := time.Now()
	result, err := driver.Tokenize(filePath, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	timings.Set(pipeline.StageDecode, time.Since(decodeStart))

	// Выводим диагностику в stderr, если есть
	if result.HasErrors() || result.HasWarnings() {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		popts := diagfmt.PrettyOpts{
			Color:       useColor,
			ShowPreview: true,
		}
		if err = diagfmt.FormatDiagnosticsPretty(os.Stderr, filePath, result, popts); err != nil {
			return err
		}
	}

	renderStart := time.Now()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result, diagfmt.JSONOpts{IncludePositions: positions})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	timings.Set(pipeline.StageRender, time.Since(renderStart))

	if showTimings(cmd) {
		pipeline.WriteTimings(os.Stdout, "tokenize", timings)
	}
	return nil
}
