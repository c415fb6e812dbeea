// Package attribution runs the end-to-end line attribution for a repository:
// list tracked files, keep those with an allowed extension, blame each one and
// tally the author of every line.
package attribution

import (
	"context"
	"log/slog"

	"github.com/gorewood/authorloc/internal/blame"
	"github.com/gorewood/authorloc/internal/filter"
	"github.com/gorewood/authorloc/internal/git"
	"github.com/gorewood/authorloc/internal/output"
	"github.com/gorewood/authorloc/internal/tally"
)

var pkgLogger *slog.Logger

func logger() *slog.Logger {
	if pkgLogger == nil {
		pkgLogger = slog.Default().With("package", "attribution")
	}

	return pkgLogger
}

// GitOps defines the git operations required by the Analyzer.
type GitOps interface {
	ListTrackedFiles(ctx context.Context, repoPath string) ([]string, error)
	Blame(ctx context.Context, repoPath, file string) (string, error)
}

// realGitOps implements GitOps using the actual git package functions.
type realGitOps struct{}

func (realGitOps) ListTrackedFiles(ctx context.Context, repoPath string) ([]string, error) {
	return git.ListTrackedFiles(ctx, repoPath)
}

func (realGitOps) Blame(ctx context.Context, repoPath, file string) (string, error) {
	return git.BlameLinePorcelain(ctx, repoPath, file)
}

// Options controls a single attribution run.
type Options struct {
	Extensions filter.Extensions
	Sort       tally.SortMode

	// KeepGoing records per-file blame failures and continues instead of
	// aborting the run.
	KeepGoing bool

	// Progress, if set, is called before each file is blamed.
	Progress func(file string)

	// Warn, if set, is called for each file skipped because of KeepGoing.
	Warn func(file string, err error)
}

// FileError records a file whose blame failed during a keep-going run.
type FileError struct {
	Path string
	Err  error
}

// Result is the outcome of an attribution run.
type Result struct {
	Repository string
	Extensions []string
	Tracked    int // files reported by git
	Processed  int // files blamed successfully
	Skipped    int // files rejected by the extension filter
	Failed     []FileError
	Report     tally.Report
}

// Analyzer computes line attribution using a GitOps implementation.
type Analyzer struct {
	git GitOps
}

// NewAnalyzer creates an Analyzer with the given git operations.
// If ops is nil, uses real git operations.
func NewAnalyzer(ops GitOps) *Analyzer {
	if ops == nil {
		ops = realGitOps{}
	}
	return &Analyzer{git: ops}
}

// Files returns the tracked files under repoPath whose extension is allowed,
// in git's order, plus the number of tracked files that were skipped.
func (a *Analyzer) Files(ctx context.Context, repoPath string, exts filter.Extensions) ([]string, int, error) {
	tracked, err := a.git.ListTrackedFiles(ctx, repoPath)
	if err != nil {
		return nil, 0, err
	}
	kept, skipped := exts.Filter(tracked)
	return kept, skipped, nil
}

// Run blames every matching file in repoPath and builds the report.
//
// Files are processed one at a time in git's order. A blame failure aborts
// the run with a system error unless opts.KeepGoing is set. Zero matching
// files is not an error: the report simply has a zero total.
func (a *Analyzer) Run(ctx context.Context, repoPath string, opts Options) (*Result, error) {
	tracked, err := a.git.ListTrackedFiles(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	files, skipped := opts.Extensions.Filter(tracked)

	logger().Debug("filtered tracked files",
		"tracked", len(tracked), "matched", len(files), "skipped", skipped)

	result := &Result{
		Repository: repoPath,
		Extensions: opts.Extensions.List(),
		Tracked:    len(tracked),
		Skipped:    skipped,
	}

	counts := tally.New()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, output.NewInterruptedError("attributing lines", err)
		}

		if opts.Progress != nil {
			opts.Progress(file)
		}

		text, err := a.git.Blame(ctx, repoPath, file)
		if err != nil {
			if !opts.KeepGoing || ctx.Err() != nil {
				return nil, output.NewSystemErrorWithCause("blame failed for "+file+": "+err.Error(), err)
			}
			result.Failed = append(result.Failed, FileError{Path: file, Err: err})
			if opts.Warn != nil {
				opts.Warn(file, err)
			}
			continue
		}

		perFile := tally.New()
		lines := perFile.AddAll(blame.Authors(text))
		counts.Merge(perFile)
		logger().Debug("blamed file", "file", file, "lines", lines, "authors", perFile.Len())
		result.Processed++
	}

	result.Report = tally.BuildReport(counts, opts.Sort)
	return result, nil
}
