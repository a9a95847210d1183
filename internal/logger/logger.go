// Package logger builds the slog loggers shared by the HTTP stack, migrations and tracing setup.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"bookapi/internal/config"
)

// TimeKey replaces slog's default "time" key so log lines keep the service's ts field.
const TimeKey = "ts"

// Options controls how a logger is built.
type Options struct {
	Writer   io.Writer
	Level    slog.Level
	Format   string
	Location *time.Location
}

// New creates a logger writing one record per line.
// Format "text" selects slog's text handler; anything else yields JSON.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	loc := opts.Location
	handlerOpts := &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String(TimeKey, a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(opts.Writer, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(opts.Writer, handlerOpts)
	}
	return slog.New(handler)
}

// NewJSON is a shorthand for a JSON logger at the given level.
func NewJSON(w io.Writer, loc *time.Location, level slog.Level) *slog.Logger {
	return New(Options{Writer: w, Level: level, Format: "json", Location: loc})
}

// FromConfig builds the application logger from configuration and installs it as the slog default.
func FromConfig(cfg *config.AppConfig) *slog.Logger {
	l := New(Options{
		Writer:   os.Stdout,
		Level:    ParseLevel(cfg.Log.Level),
		Format:   cfg.Log.Format,
		Location: cfg.Location(),
	})
	slog.SetDefault(l)
	return l
}

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
