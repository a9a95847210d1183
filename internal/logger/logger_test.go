package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*60*60)

	l := NewJSON(&buf, loc, slog.LevelInfo)
	l.Info("db_migration_step", "component", "database", "migration_step", "create_table_books")
	l.Debug("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))

	assert.Equal(t, "db_migration_step", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "database", entry["component"])
	assert.NotContains(t, entry, "time")

	ts, ok := entry[TimeKey].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	_, offset := parsed.Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Format: "text", Level: slog.LevelDebug})
	l.Debug("hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "ts=")
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "k=v")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
