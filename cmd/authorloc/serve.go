package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/authorloc/internal/attribution"
	authorlocmcp "github.com/gorewood/authorloc/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run authorloc as a Model Context Protocol (MCP) server over stdio.

This exposes line attribution as read-only MCP tools that any MCP-capable
agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "authorloc": {
        "command": "authorloc",
        "args": ["serve"]
      }
    }
  }

Available tools: attribute, list_files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := authorlocmcp.NewServer(buildVersion(), attribution.NewAnalyzer(nil))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
