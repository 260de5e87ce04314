package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Level tags are colored per severity; fatih/color degrades to plain text
// when stdout is not a terminal.
var (
	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

const consoleTimeFormat = "2006-01-02 15:04:05"

// consoleHandler is the color console sink. It renders one line per record:
// timestamp, colored level tag, message, then attributes as key=value pairs.
type consoleHandler struct {
	mu         *sync.Mutex
	w          io.Writer
	level      slog.Level
	timeFormat string
	attrs      []slog.Attr
	groups     []string
}

func newConsoleHandler(w io.Writer, level slog.Level, timeFormat string) *consoleHandler {
	if timeFormat == "" {
		timeFormat = consoleTimeFormat
	}
	return &consoleHandler{
		mu:         &sync.Mutex{},
		w:          w,
		level:      level,
		timeFormat: timeFormat,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	if !record.Time.IsZero() {
		b.WriteString(record.Time.Format(h.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(levelTag(record.Level))
	b.WriteByte(' ')
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, h.groups, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.groups, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func levelTag(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return debugColor.Sprint("DEBUG")
	case level < slog.LevelWarn:
		return infoColor.Sprint("INFO ")
	case level < slog.LevelError:
		return warnColor.Sprint("WARN ")
	default:
		return errorColor.Sprint("ERROR")
	}
}

func writeAttr(b *strings.Builder, groups []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, attr.Value.Resolve())
}

var _ slog.Handler = (*consoleHandler)(nil)
