package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/authorloc/internal/attribution"
	"github.com/gorewood/authorloc/internal/export"
	"github.com/gorewood/authorloc/internal/filter"
	"github.com/gorewood/authorloc/internal/output"
	"github.com/gorewood/authorloc/internal/tally"
)

// reportOptions holds the flags that only the report uses.
type reportOptions struct {
	format    string
	sort      string
	locale    string
	keepGoing bool
	quiet     bool

	// ops overrides git access in tests.
	ops attribution.GitOps
}

// addReportFlags registers the report flags on the root command.
func addReportFlags(cmd *cobra.Command, opts *reportOptions) {
	cmd.Flags().StringVar(&opts.format, "format", string(export.FormatText),
		"Output format: text, json, yaml or markdown (env AUTHORLOC_FORMAT)")
	cmd.Flags().StringVar(&opts.sort, "sort", tally.SortExact.String(),
		"Author order: exact (by exact share) or truncated (by whole-percent share, then name) (env AUTHORLOC_SORT)")
	cmd.Flags().StringVar(&opts.locale, "locale", "en", "Locale for digit grouping in text output (env AUTHORLOC_LOCALE)")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "Skip files whose blame fails instead of aborting")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print per-file progress")
}

// runReport executes the attribution report.
func runReport(cmd *cobra.Command, opts *reportOptions) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return fail(newPrinter(cmd, isJSONMode(cmd)), err)
	}
	if isJSONMode(cmd) {
		format = export.FormatJSON
	}

	printer := newPrinter(cmd, format == export.FormatJSON)

	repo, exts, err := repositoryFlags(cmd)
	if err != nil {
		return fail(printer, err)
	}

	mode, err := tally.ParseSortMode(opts.sort)
	if err != nil {
		return fail(printer, output.NewUserError(err.Error()))
	}

	numbers, err := output.NewNumberFormatter(opts.locale)
	if err != nil {
		return fail(printer, err)
	}

	runOpts := attribution.Options{
		Extensions: exts,
		Sort:       mode,
		KeepGoing:  opts.keepGoing,
		Warn: func(file string, err error) {
			printer.Warn("skipping %s: %v", file, err)
		},
	}
	if !opts.quiet {
		runOpts.Progress = func(file string) {
			printer.Stderr("Processing %s...\n", file)
		}
	}

	result, err := attribution.NewAnalyzer(opts.ops).Run(cmd.Context(), repo, runOpts)
	if err != nil {
		return fail(printer, err)
	}

	doc := export.NewDocument(result)
	switch format {
	case export.FormatJSON:
		err = export.WriteJSON(printer, doc)
	case export.FormatYAML:
		err = export.WriteYAML(printer.Writer(), doc)
	case export.FormatMarkdown:
		var page string
		if page, err = export.Markdown(doc); err == nil {
			printer.Print("%s", page)
		}
	default:
		export.WriteText(printer, numbers, doc)
		if n := len(result.Failed); n > 0 {
			printer.Warn("%d file(s) could not be blamed and were skipped", n)
		}
	}
	if err != nil {
		return fail(printer, err)
	}
	return nil
}

// repositoryFlags validates --path and --extensions.
// A missing flag or a path that does not exist is a user error.
func repositoryFlags(cmd *cobra.Command) (string, filter.Extensions, error) {
	repo, _ := cmd.Flags().GetString("path")
	list, _ := cmd.Flags().GetString("extensions")

	if repo == "" {
		return "", filter.Extensions{}, output.NewUserError("missing required flag --path (or set AUTHORLOC_PATH)")
	}
	exts := filter.ParseExtensions(list)
	if exts.Empty() {
		return "", filter.Extensions{}, output.NewUserError("missing required flag --extensions, e.g. --extensions rs,go (or set AUTHORLOC_EXTENSIONS)")
	}

	info, err := os.Stat(repo)
	if errors.Is(err, fs.ErrNotExist) {
		return "", filter.Extensions{}, output.NewUserError("repository path does not exist: " + repo)
	}
	if err == nil && !info.IsDir() {
		return "", filter.Extensions{}, output.NewUserError("repository path is not a directory: " + repo)
	}

	return repo, exts, nil
}
