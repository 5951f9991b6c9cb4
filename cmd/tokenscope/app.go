package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/processing"
	"blinkdeploys/tokenscope/pkg/processing/tokens"
	"blinkdeploys/tokenscope/pkg/telemetry"
)

// app holds the components every analyzing command needs.
type app struct {
	cfg       *config.Config
	telemetry *telemetry.Telemetry
	catalog   *catalog.Catalog
	counter   tokens.Counter
	processor *processing.Processor
}

// newApp builds telemetry, the pricing catalog, the token counter and the
// processor from cfg. Logs go to stderr. When quiet is set and --verbose
// was not given, only warnings and errors are logged so one-shot commands
// print nothing but their result.
func newApp(ctx context.Context, cfg *config.Config, quiet bool) (*app, error) {
	if quiet && !verbose {
		cfg.Telemetry.Logging.Level = "warn"
	}

	tel, err := telemetry.New(&cfg.Telemetry, Version, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	cat, err := catalog.FromConfig(ctx, &cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing catalog: %w", err)
	}
	tel.Metrics().SetCatalogModels(cat.Len())

	counter, err := tokens.NewCounter(&cfg.Processing.Tokens, tel.Metrics())
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	p, err := processing.NewFromConfig(&cfg.Processing, counter, cat,
		processing.WithRecorder(tel.Metrics()),
		processing.WithTracer(tel.Tracer()),
		processing.WithLogger(tel.Logger().WithComponent("processing")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create processor: %w", err)
	}

	return &app{
		cfg:       cfg,
		telemetry: tel,
		catalog:   cat,
		counter:   counter,
		processor: p,
	}, nil
}

// Close flushes telemetry and releases the token cache.
func (a *app) Close(ctx context.Context) error {
	if cc, ok := a.counter.(*tokens.CachedCounter); ok {
		cc.Close()
	}
	return a.telemetry.Shutdown(ctx)
}

// errNotText is returned by readInput for data that is not UTF-8.
var errNotText = errors.New("input is not UTF-8 text")

// readInput reads a file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", displayName(path), err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", displayName(path), errNotText)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
