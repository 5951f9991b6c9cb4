package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blinkdeploys/tokenscope/pkg/cli"
	"blinkdeploys/tokenscope/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tokenscope",
	Short: "tokenscope - LLM token and cost estimation",
	Long: `tokenscope estimates what a text costs to send to popular LLMs.

For every model in the pricing catalog it reports:
  - The input cost of the original text
  - Projected totals for 1,000 and 5,000 output tokens
  - Whether the text fits the model's context window
  - How much a lossless-enough compression pass saves

Analysis is available from the command line, as an HTTP API (serve) and as
MCP tools (mcp).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tokenscope.yaml", "config file path (missing file uses defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig initializes the global configuration from --config. A missing
// file yields the defaults with environment overrides applied.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError(cfgFile, fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}
