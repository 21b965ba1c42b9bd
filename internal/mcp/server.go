// Package mcp provides a Model Context Protocol server for yasunori.
// It exposes document rendering and anchor generation as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all yasunori tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "yasunori",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for pure tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all yasunori tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_document",
		Description: "Render a TOML or YAML entry list into the markdown document: summary table followed by one section per entry.",
		Annotations: readOnlyAnnotations(),
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decode_document",
		Description: "Decode a TOML or YAML entry list and return the normalized entries with their anchors.",
		Annotations: readOnlyAnnotations(),
	}, handleDecode)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "slug",
		Description: "Compute the anchor link for an entry title and YYYY-MM-DD date.",
		Annotations: readOnlyAnnotations(),
	}, handleSlug)
}
