package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	yasunorimcp "github.com/gorewood/yasunori/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run yasunori as a Model Context Protocol (MCP) server over stdio.

Agents can render documents, decode entries, and compute anchors without
writing files. Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "yasunori": {
        "command": "yasunori",
        "args": ["serve"]
      }
    }
  }

Available tools: render_document, decode_document, slug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := yasunorimcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
