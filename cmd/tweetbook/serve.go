package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/tweetbook/internal/config"
	tweetbookmcp "github.com/gorewood/tweetbook/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run tweetbook as a Model Context Protocol (MCP) server over stdio.

The resolved configuration (config file, env files, TWEETBOOK_* variables)
provides defaults for every tool call; tool arguments override it.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "tweetbook": {
        "command": "tweetbook",
        "args": ["serve"]
      }
    }
  }

Available tools: convert, stats, preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, config.Config{})
			if err != nil {
				return fail(newPrinter(cmd), err)
			}
			server := tweetbookmcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
