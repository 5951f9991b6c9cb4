package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/cli"
	"blinkdeploys/tokenscope/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and pricing catalog",
	Long: `Load the configuration file with environment overrides, validate it,
and load the configured pricing catalog.

Unlike the other commands, a missing config file is an error here.

Examples:
  tokenscope validate --config tokenscope.yaml
  TOKENSCOPE_CATALOG_SOURCE=sqlite tokenscope validate`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError(cfgFile, err.Error())
	}

	cat, err := catalog.FromConfig(context.Background(), &cfg.Catalog)
	if err != nil {
		return cli.NewConfigError("catalog", err.Error())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Configuration valid: %s\n", cfgFile)
	fmt.Fprintf(out, "✓ Token counter: %s (model %s)\n", cfg.Processing.Tokens.Counter, cfg.Processing.Tokens.Model)
	fmt.Fprintf(out, "✓ Pricing catalog: %s (%d models, %d providers)\n",
		sourceName(cfg.Catalog.Source), cat.Len(), len(cat.Providers()))
	return nil
}

func sourceName(source string) string {
	if source == "" {
		return catalog.SourceBuiltin
	}
	return source
}
