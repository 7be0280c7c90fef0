// Package main implements the rubyast CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rubyast",
	Short: "Inspector for serialized Ruby syntax trees",
	Long:  `rubyast decodes syntax trees and token streams serialized by the prism parser and prints them in human or machine readable form`,
}

// main initializes the CLI by setting the command version, registering subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-depth", 0, "node nesting limit, 0 selects the default")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the given path")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the given path on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to the given path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// decodeOptions собирает опции декодера из глобальных флагов.
func decodeOptions(cmd *cobra.Command) (loader.Options, error) {
	maxDepth, err := cmd.Root().PersistentFlags().GetInt("max-depth")
	if err != nil {
		return loader.Options{}, fmt.Errorf("failed to get max-depth flag: %w", err)
	}
	return loader.Options{MaxDepth: maxDepth}, nil
}

func showTimings(cmd *cobra.Command) bool {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	return err == nil && on
}
