// Package cli implements the spanmark command-line interface.
//
// This package provides commands for rendering annotation documents as text
// diagrams, HTML fragments, or machine-readable exports, inspecting their
// computed overlap layout, and viewing them interactively. The CLI is built
// on cobra with structured logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw a document in one of the supported output formats
//   - inspect: Summarize a document's spans and layout groups
//   - overlap: Export the span overlap structure as a Graphviz graph
//   - view: Browse a rendered document in an interactive pager
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so commands and helpers share one
// configured instance.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps,
// filtering below the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration, e.g. "Rendered 132 lines (12ms)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package. A distinct type
// prevents collisions with other packages.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the loaded configuration from ctx, falling
// back to defaults when root command setup did not run (tests, mainly).
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return DefaultConfig()
}
