// Package logging provides structured logging setup shared by every command.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or
	// empty values fall back to info.
	Level string
	// File is an optional log file path. When set, log output goes to the
	// file instead of stderr so reports stay clean.
	File string
}

// Result reports what NewLogger actually set up.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string
	// file handle kept for Close; nil when logging to stderr.
	file *os.File
}

// Close releases the log file, if any.
func (r *Result) Close() {
	if r.file != nil {
		_ = r.file.Close()
		r.file = nil
	}
}

// NewLogger builds the application logger. File logging failures fall back
// to stderr; logging setup never aborts a command.
func NewLogger(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	result := Result{}

	if cfg.File != "" {
		f, ferr := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if ferr == nil {
			out = f
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = f
		}
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
