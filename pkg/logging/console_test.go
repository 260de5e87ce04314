package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandlerRendersRecord(t *testing.T) {
	var buf strings.Builder
	handler := newConsoleHandler(&buf, slog.LevelInfo, "")

	record := slog.NewRecord(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), slog.LevelInfo, "node ready", 0)
	record.AddAttrs(slog.String("subsystem", "Bootstrap"))
	require.NoError(t, handler.Handle(context.Background(), record))

	out := buf.String()
	assert.Contains(t, out, "2026-03-14 09:30:00")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "node ready")
	assert.Contains(t, out, "subsystem=Bootstrap")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConsoleHandlerLevelGate(t *testing.T) {
	handler := newConsoleHandler(&strings.Builder{}, slog.LevelWarn, "")

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestConsoleHandlerWithAttrsAndGroup(t *testing.T) {
	var buf strings.Builder
	base := newConsoleHandler(&buf, slog.LevelDebug, "")

	scoped := base.WithGroup("run").WithAttrs([]slog.Attr{slog.Int("id", 42)})
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "volume created", 0)
	require.NoError(t, scoped.Handle(context.Background(), record))

	assert.Contains(t, buf.String(), "run.id=42")
}

func TestConsoleHandlerCustomTimeFormat(t *testing.T) {
	var buf strings.Builder
	handler := newConsoleHandler(&buf, slog.LevelInfo, "15:04:05")

	record := slog.NewRecord(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), slog.LevelInfo, "tick", 0)
	require.NoError(t, handler.Handle(context.Background(), record))

	assert.True(t, strings.HasPrefix(buf.String(), "09:30:00 "))
}
