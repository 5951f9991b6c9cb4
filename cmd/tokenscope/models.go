package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/cli"
)

var modelsFlags struct {
	format       string
	exportSQLite string
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the pricing catalog",
	Long: `List every model in the configured pricing catalog with its input and
output price per million tokens and its context window.

--export-sqlite writes the catalog to a SQLite database that can be used
as catalog.source: sqlite.

Examples:
  tokenscope models
  tokenscope models --format csv > prices.csv
  tokenscope models --export-sqlite prices.db`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().StringVarP(&modelsFlags.format, "format", "f", "text", "output format: text, json, csv")
	modelsCmd.Flags().StringVar(&modelsFlags.exportSQLite, "export-sqlite", "", "write the catalog to this SQLite database")
}

func runModels(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(modelsFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	cat, err := catalog.FromConfig(ctx, &cfg.Catalog)
	if err != nil {
		return cli.NewCommandError("models", err)
	}

	if modelsFlags.exportSQLite != "" {
		if err := catalog.WriteSQLite(ctx, modelsFlags.exportSQLite, cat); err != nil {
			return cli.NewCommandError("models", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d models to %s\n", cat.Len(), modelsFlags.exportSQLite)
		return nil
	}

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), catalogDocument(cat))
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), cat)
}

// catalogDocument is the JSON shape of the models listing, shared with
// GET /models.
func catalogDocument(c *catalog.Catalog) map[string]any {
	return map[string]any{
		"as_of":  c.AsOf().Format("2006-01-02"),
		"models": c.Tree(),
	}
}
