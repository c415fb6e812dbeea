package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/authorloc/internal/attribution"
)

// filesResult is the JSON form of the files command output.
type filesResult struct {
	Repository string   `json:"repository"`
	Extensions []string `json:"extensions"`
	Files      []string `json:"files"`
	Count      int      `json:"count"`
	Skipped    int      `json:"skipped"`
}

// newFilesCmd creates the files command.
// If ops is nil, real git is used.
func newFilesCmd(ops attribution.GitOps) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the tracked files that would be attributed",
		Long: `List the tracked files whose extension matches --extensions, in git order,
without running git blame. Useful for checking a filter before a long run.

Examples:
  authorloc files -p . -e go
  authorloc files -p . -e rs,toml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFiles(cmd, ops)
		},
	}
}

// runFiles executes the files command.
func runFiles(cmd *cobra.Command, ops attribution.GitOps) error {
	printer := newPrinter(cmd, isJSONMode(cmd))

	repo, exts, err := repositoryFlags(cmd)
	if err != nil {
		return fail(printer, err)
	}

	files, skipped, err := attribution.NewAnalyzer(ops).Files(cmd.Context(), repo, exts)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		if files == nil {
			files = []string{}
		}
		return printer.WriteJSON(filesResult{
			Repository: repo,
			Extensions: exts.List(),
			Files:      files,
			Count:      len(files),
			Skipped:    skipped,
		})
	}

	for _, file := range files {
		printer.Println(file)
	}
	printer.Stderr("%d file(s) matched, %d skipped\n", len(files), skipped)
	return nil
}
