package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neswisoft/ruby/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the on-disk cache of decode summaries",
	Long:  "Clean removes every pair summary memoized by batch --cache.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache(cacheAppName)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "dropped %s\n", cache.Dir())
	return nil
}
