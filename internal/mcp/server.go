// Package mcp provides a Model Context Protocol server for tweetbook.
// It exposes the conversion pipeline as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/tweetbook/internal/config"
)

// NewServer creates an MCP server with all tweetbook tools registered.
// Tool inputs override the options in defaults.
func NewServer(version string, defaults config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tweetbook",
		Version: version,
	}, nil)
	registerTools(server, defaults)
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

// writeAnnotations returns annotations for convert, which overwrites
// per-year documents with identical content on every run.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all tweetbook tools to the server.
func registerTools(server *mcp.Server, defaults config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "convert",
		Description: "Convert a tweets.js archive export into one markdown document per year. " +
			"Returns the output directory, the documents written, and post counts.",
		Annotations: writeAnnotations(),
	}, handleConvert(defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Count the posts of a tweets.js archive export per year and month without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleStats(defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Render the markdown document for one year of a tweets.js archive export without writing it.",
		Annotations: readOnlyAnnotations(),
	}, handlePreview(defaults))
}
