package main

import (
	"context"

	"github.com/spf13/cobra"

	"blinkdeploys/tokenscope/pkg/cli"
	"blinkdeploys/tokenscope/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve analysis tools over MCP (stdio)",
	Long: `Run an MCP server on stdin/stdout exposing the analyze_text,
compress_text and list_models tools.

Logs go to stderr; stdout carries only the protocol.

Example client configuration:
  {"command": "tokenscope", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return cli.NewCommandError("mcp", err)
	}
	defer a.Close(context.Background())

	s := mcp.NewServer("tokenscope", Version, mcp.Deps{
		Processor: a.processor,
		Catalog:   a.catalog,
	})
	return cli.NewCommandError("mcp", s.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout()))
}
