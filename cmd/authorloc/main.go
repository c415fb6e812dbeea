// Package main provides the entry point for the authorloc CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/authorloc/internal/attribution"
	"github.com/gorewood/authorloc/internal/config"
	"github.com/gorewood/authorloc/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against TTY detection on stdout.
// An invalid mode falls back to auto; validateColor rejects it before any
// command runs.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		if parsed, err := output.ParseColorMode(flag.Value.String()); err == nil {
			mode = parsed
		}
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// validateColor rejects an unknown --color or AUTHORLOC_COLOR value.
func validateColor(cmd *cobra.Command) error {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		return nil
	}
	if _, err := output.ParseColorMode(flag.Value.String()); err != nil {
		return fail(newPrinter(cmd, isJSONMode(cmd)), output.NewUserError(err.Error()))
	}
	return nil
}

// newPrinter returns a printer for cmd with errors and progress on stderr.
func newPrinter(cmd *cobra.Command, jsonMode bool) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), jsonMode, useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// reportedError marks an error already written to stdout as JSON.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// fail reports err as a JSON document in JSON mode and returns it.
// In human mode fang renders the returned error.
func fail(printer *output.Printer, err error) error {
	if printer.IsJSON() {
		printer.Error(err)
		return reportedError{err}
	}
	return err
}

// handleError renders errors for fang, skipping those already reported as
// JSON so stderr stays empty in JSON mode.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var reported reportedError
	if errors.As(err, &reported) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the authorloc CLI.
// Running the root command produces the attribution report.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(nil)
}

// newRootCmdInternal creates the root command with optional git injection.
// If ops is nil, real git is used when a command runs.
func newRootCmdInternal(ops attribution.GitOps) *cobra.Command {
	opts := &reportOptions{ops: ops}

	cmd := &cobra.Command{
		Use:   "authorloc",
		Short: "Lines of code per author, from git blame",
		Long: `authorloc - Attribute every line of a repository to the author who last changed it.

authorloc lists the files tracked by git, keeps those with one of the given
extensions, runs git blame on each and reports how many lines each author
owns, as a count and as a share of the total.

Flags fall back to AUTHORLOC_* environment variables, which may also be set
in .env.local, .env or the env file in the authorloc config directory.`,
		Example: `  authorloc --path . --extensions go
  authorloc -p ~/src/project -e rs,toml --sort truncated
  authorloc -p . -e py --format markdown > AUTHORS.md`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configureLogging(cmd)
		if err := applyDefaults(cmd); err != nil {
			return err
		}
		return validateColor(cmd)
	}

	flags := cmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.StringP("path", "p", "", "Path to the git repository (env AUTHORLOC_PATH)")
	flags.StringP("extensions", "e", "", "Comma-separated file extensions to include, e.g. rs,go (env AUTHORLOC_EXTENSIONS)")
	flags.String("color", output.ColorAuto, "Color output: auto, always or never (env AUTHORLOC_COLOR)")
	flags.BoolP("verbose", "v", false, "Log git invocations and per-file results to stderr")

	addReportFlags(cmd, opts)

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newFilesCmd(ops))
	cmd.AddCommand(newServeCmd())

	return cmd
}

// envDefaults maps flag names to the config defaults that back them.
func envDefaults(d config.Defaults) map[string]string {
	return map[string]string{
		"path":       d.Path,
		"extensions": d.Extensions,
		"format":     d.Format,
		"color":      d.Color,
		"sort":       d.Sort,
		"locale":     d.Locale,
	}
}

// applyDefaults fills flags the user did not set from the environment and
// env files. Explicit flags always win. Broken env files are logged and
// skipped by config.Load.
func applyDefaults(cmd *cobra.Command) error {
	for name, value := range envDefaults(config.LoadDefaults()) {
		if value == "" {
			continue
		}
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			return fail(newPrinter(cmd, isJSONMode(cmd)),
				output.NewUserError(fmt.Sprintf("invalid value %q for %s from environment: %v", value, name, err)))
		}
	}
	return nil
}
