package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// configureLogging installs the default slog handler on stderr.
// Only warnings are shown unless --verbose is set.
func configureLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
