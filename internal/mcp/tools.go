package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/authorloc/internal/attribution"
	"github.com/gorewood/authorloc/internal/export"
	"github.com/gorewood/authorloc/internal/filter"
	"github.com/gorewood/authorloc/internal/tally"
)

var errNoExtensions = errors.New("extensions must name at least one file extension, e.g. [\"go\", \"rs\"]")

// --- Attribute tool ---

// AttributeInput is the input for the attribute tool.
type AttributeInput struct {
	Path       string   `json:"path,omitempty"       jsonschema:"repository path (default: the server's working directory)"`
	Extensions []string `json:"extensions"           jsonschema:"file extensions to include, without the dot (e.g. go, rs)"`
	Sort       string   `json:"sort,omitempty"       jsonschema:"ordering: exact (default) or truncated"`
	KeepGoing  bool     `json:"keep_going,omitempty" jsonschema:"skip files whose blame fails instead of failing the call"`
}

func handleAttribute(analyzer *attribution.Analyzer) mcp.ToolHandlerFor[AttributeInput, export.Document] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AttributeInput) (*mcp.CallToolResult, export.Document, error) {
		exts := filter.NewExtensions(input.Extensions)
		if exts.Empty() {
			return nil, export.Document{}, errNoExtensions
		}

		mode, err := tally.ParseSortMode(input.Sort)
		if err != nil {
			return nil, export.Document{}, err
		}

		result, err := analyzer.Run(ctx, repoPath(input.Path), attribution.Options{
			Extensions: exts,
			Sort:       mode,
			KeepGoing:  input.KeepGoing,
		})
		if err != nil {
			return nil, export.Document{}, fmt.Errorf("attributing lines: %w", err)
		}

		return nil, *export.NewDocument(result), nil
	}
}

// --- List files tool ---

// ListFilesInput is the input for the list_files tool.
type ListFilesInput struct {
	Path       string   `json:"path,omitempty" jsonschema:"repository path (default: the server's working directory)"`
	Extensions []string `json:"extensions"     jsonschema:"file extensions to include, without the dot (e.g. go, rs)"`
}

// ListFilesOutput is the output for the list_files tool.
type ListFilesOutput struct {
	Files   []string `json:"files"   jsonschema:"matching tracked files in git order"`
	Count   int      `json:"count"   jsonschema:"number of matching files"`
	Skipped int      `json:"skipped" jsonschema:"tracked files rejected by the extension filter"`
}

func handleListFiles(analyzer *attribution.Analyzer) mcp.ToolHandlerFor[ListFilesInput, ListFilesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListFilesInput) (*mcp.CallToolResult, ListFilesOutput, error) {
		exts := filter.NewExtensions(input.Extensions)
		if exts.Empty() {
			return nil, ListFilesOutput{}, errNoExtensions
		}

		files, skipped, err := analyzer.Files(ctx, repoPath(input.Path), exts)
		if err != nil {
			return nil, ListFilesOutput{}, fmt.Errorf("listing files: %w", err)
		}
		if files == nil {
			files = []string{}
		}

		return nil, ListFilesOutput{Files: files, Count: len(files), Skipped: skipped}, nil
	}
}

// repoPath defaults an empty path to the working directory.
func repoPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
