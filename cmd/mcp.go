package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xmazu/envload/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio) for AI/IDE integration",
	Long:  `Run the Model Context Protocol server on stdio. Exposes check_env (validate the project's .env file) and list_keys (key names only). Values are never returned.`,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	version := rootCmd.Version
	if version == "" {
		version = "dev"
	}
	return mcpserver.Run(context.Background(), version)
}
