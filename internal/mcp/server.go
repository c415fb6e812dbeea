// Package mcp provides a Model Context Protocol server for authorloc.
// It exposes line attribution as read-only MCP tools that any MCP-capable
// agent can call.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/authorloc/internal/attribution"
)

// NewServer creates an MCP server with all authorloc tools registered.
func NewServer(version string, analyzer *attribution.Analyzer) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "authorloc",
		Version: version,
	}, nil)
	registerTools(server, analyzer)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all authorloc tools to the server.
func registerTools(server *mcp.Server, analyzer *attribution.Analyzer) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "attribute",
		Description: "Attribute every line of the tracked files with the given extensions to the author " +
			"who last changed it (git blame) and return per-author line counts and percentages.",
		Annotations: readOnlyAnnotations(),
	}, handleAttribute(analyzer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List the tracked files whose extension matches, without running blame.",
		Annotations: readOnlyAnnotations(),
	}, handleListFiles(analyzer))
}
