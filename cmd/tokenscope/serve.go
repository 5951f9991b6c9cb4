package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"blinkdeploys/tokenscope/pkg/catalog/audit"
	"blinkdeploys/tokenscope/pkg/cli"
	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/server"
	"blinkdeploys/tokenscope/pkg/telemetry/health"
	"blinkdeploys/tokenscope/pkg/telemetry/logging"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the tokenscope HTTP API with the specified configuration.

The server exposes POST /analyze and POST /compress, the pricing catalog at
GET /models, health probes and Prometheus metrics. A cron-scheduled audit
warns when the pricing catalog is older than catalog.max_age. Edits to the
config file's log level take effect without a restart.

Examples:
  # Start with default config
  tokenscope serve

  # Start with custom config
  tokenscope serve --config /etc/tokenscope/config.yaml

  # Override listen address
  tokenscope serve --listen 0.0.0.0:8080

  # Validate config and catalog without starting the server
  tokenscope serve --dry-run`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	a, err := newApp(ctx, cfg, false)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	out := cmd.OutOrStdout()
	if serveFlags.dryRun {
		fmt.Fprintf(out, "✓ Configuration valid (%d models priced)\n", a.catalog.Len())
		return nil
	}

	checker := a.telemetry.Health()
	checker.RegisterCheck("catalog", health.CatalogCheck(a.catalog))
	checker.RegisterCheck("tokenizer", health.CounterCheck(a.counter, cfg.Processing.Tokens.Model))
	slog.Debug("health checks registered", "checks", checker.ListChecks())

	if _, err := os.Stat(cfgFile); err == nil {
		go watchConfig(ctx, a.telemetry.Logger(), cfgFile, levelOverride())
	}

	auditor := audit.New(a.catalog, audit.Config{
		Schedule: cfg.Catalog.AuditSchedule,
		MaxAge:   cfg.Catalog.MaxAge,
	}, a.telemetry.Metrics())
	if err := auditor.Start(ctx); err != nil {
		slog.Warn("failed to start catalog audit scheduler", "error", err)
	} else {
		defer auditor.Stop()
		if next := auditor.NextRun(); next != nil {
			slog.Debug("catalog audit scheduled", "next_run", next)
		}
	}

	srv := server.New(cfg, server.Deps{
		Processor: a.processor,
		Catalog:   a.catalog,
		Health:    checker,
		Metrics:   a.telemetry.Metrics(),
		Version:   health.NewVersionInfo(Version, GitCommit, BuildDate),
	})

	fmt.Fprintf(out, "tokenscope v%s\n", Version)
	fmt.Fprintf(out, "✓ Pricing catalog loaded (%d models, as of %s)\n", a.catalog.Len(), a.catalog.AsOf().Format("2006-01-02"))
	fmt.Fprintf(out, "✓ Listening on %s\n", cfg.Server.ListenAddress)
	fmt.Fprintln(out, "\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}

	fmt.Fprintln(out, "✓ Server stopped")
	return nil
}

// levelOverride returns the log level forced by flags, or "".
func levelOverride() string {
	if verbose {
		return "debug"
	}
	return serveFlags.logLevel
}

// watchConfig reloads path whenever it changes until ctx is done.
func watchConfig(ctx context.Context, logger *logging.Logger, path, override string) {
	err := cli.WatchFile(ctx, path, cli.DefaultDebounce, func() {
		if err := reloadLogLevel(logger, path, override); err != nil {
			slog.Warn("config reload failed, keeping previous settings", "path", path, "error", err)
			return
		}
		slog.Info("config reloaded", "path", path, "log_level", logger.Level().String())
	})
	if err != nil {
		slog.Warn("config watch stopped", "path", path, "error", err)
	}
}

// reloadLogLevel re-reads the config file into the global configuration
// and applies its log level. A non-empty override keeps precedence.
func reloadLogLevel(logger *logging.Logger, path, override string) error {
	if err := config.ReloadConfig(path); err != nil {
		return err
	}
	level := config.MustGetConfig().Telemetry.Logging.Level
	if override != "" {
		level = override
	}
	return logger.SetLevel(level)
}
