package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"blinkdeploys/tokenscope/pkg/config"
)

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON LogFormat = "json"
	// FormatText outputs logs in logfmt-style text format.
	FormatText LogFormat = "text"
)

// Logger provides structured logging with secret redaction and context
// fields. It embeds *slog.Logger, so the usual Info/Debug/... methods are
// available directly.
type Logger struct {
	*slog.Logger

	// level is adjustable at runtime via SetLevel
	level *slog.LevelVar

	// format is the output format
	format LogFormat

	// redactor masks secrets in string attributes, nil when disabled
	redactor *Redactor
}

// Config contains configuration for the Logger.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// Format is the output format ("json", "text")
	Format string

	// AddSource includes file and line number in logs
	AddSource bool

	// Redact enables secret redaction of string attributes
	Redact bool

	// Writer is the output writer (defaults to os.Stderr)
	Writer io.Writer
}

// FromConfig converts the logging section of the application config.
func FromConfig(cfg *config.LoggingConfig, w io.Writer) Config {
	return Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
		Redact:    cfg.Redact,
		Writer:    w,
	}
}

// New creates a new Logger with the given configuration.
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	// stdout carries reports; logs go to stderr
	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}

	l := &Logger{
		level:  new(slog.LevelVar),
		format: format,
	}
	l.level.Set(level)
	if cfg.Redact {
		l.redactor = NewRedactor()
	}

	opts := &slog.HandlerOptions{
		Level:       l.level,
		AddSource:   cfg.AddSource,
		ReplaceAttr: l.replaceAttr,
	}

	var handler slog.Handler
	switch format {
	case FormatText:
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	l.Logger = slog.New(handler)
	return l, nil
}

// replaceAttr redacts string attribute values when redaction is enabled.
func (l *Logger) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if l.redactor == nil {
		return a
	}
	if a.Value.Kind() == slog.KindString {
		a.Value = slog.StringValue(l.redactor.RedactField(a.Key, a.Value.String()))
	}
	return a
}

// SetDefault installs the logger as the process-wide slog default, so
// library packages logging through slog.Default pick up its handler.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(levelStr string) error {
	level, err := parseLevel(levelStr)
	if err != nil {
		return err
	}
	l.level.Set(level)
	return nil
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Format returns the output format.
func (l *Logger) Format() LogFormat {
	return l.format
}

// WithComponent returns a slog.Logger tagged with a component attribute.
func (l *Logger) WithComponent(component string) *slog.Logger {
	return l.Logger.With("component", component)
}

// WithContext returns a slog.Logger carrying the fields stored in ctx
// (request_id, analysis_id, model, trace_id).
func (l *Logger) WithContext(ctx context.Context) *slog.Logger {
	return FromContext(ctx, l.Logger)
}

// FromContext attaches the context fields stored in ctx to logger.
// It returns logger unchanged when ctx carries none.
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	args := extractContextFields(ctx)
	if len(args) == 0 {
		return logger
	}
	return logger.With(args...)
}

// parseLevel parses a log level string into slog.Level.
func parseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// parseFormat parses a log format string into LogFormat.
func parseFormat(formatStr string) (LogFormat, error) {
	switch strings.ToLower(formatStr) {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format: %s", formatStr)
	}
}
