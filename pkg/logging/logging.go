package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupOptions carries everything Setup needs to configure the process
// logger for one environment.
type SetupOptions struct {
	// AppName, Environment, Scope and SessionID identify the process in the
	// startup banner.
	AppName     string
	Environment string
	Scope       string
	SessionID   string

	// ConfigFile is the configuration document the environment came from,
	// logged in the banner.
	ConfigFile string

	// LogFile is the full path of the rotating log file. Its parent
	// directory is created if missing.
	LogFile string

	// Level is the minimum level name, case-insensitive (debug, info, warn,
	// error).
	Level string

	// Format selects the file/console record encoding: "json" for JSON
	// records, anything else for text.
	Format string

	// DateFormat is an optional time layout for record timestamps.
	DateFormat string

	// MaxSize is the rotation threshold in KiB. BackupCount is the number of
	// rotated files to retain.
	MaxSize     int
	BackupCount int

	// UseConsole additionally attaches the color console sink.
	UseConsole bool
}

var (
	mu          sync.Mutex
	currentSink *lumberjack.Logger
)

// ParseLevel maps a case-insensitive level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Setup configures the process-wide logger for the given environment and
// returns it. The previous file sink, if any, is closed first so that
// repeated environment switches keep exactly one active handler set.
// Installing the logger as the slog default also reroutes the stdlib log
// package, so runtime warning traffic from dependencies lands in the same
// sinks.
func Setup(opts SetupOptions) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if currentSink != nil {
		currentSink.Close()
	}
	currentSink = &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    kibToWholeMiB(opts.MaxSize),
		MaxBackups: opts.BackupCount,
	}

	handlers := []slog.Handler{newRecordHandler(currentSink, level, opts)}
	if opts.UseConsole {
		handlers = append(handlers, newConsoleHandler(os.Stdout, level, opts.DateFormat))
	}

	var handler slog.Handler = handlers[0]
	if len(handlers) > 1 {
		handler = newFanoutHandler(handlers...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	banner(logger, opts)
	return logger, nil
}

// Close releases the active file sink. Intended for process shutdown and
// tests; logging after Close reopens nothing.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if currentSink != nil {
		currentSink.Close()
		currentSink = nil
	}
}

// newRecordHandler builds the file handler in the configured encoding.
func newRecordHandler(sink *lumberjack.Logger, level slog.Level, opts SetupOptions) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: timeFormatter(opts.DateFormat),
	}
	if strings.EqualFold(opts.Format, "json") {
		return slog.NewJSONHandler(sink, handlerOpts)
	}
	return slog.NewTextHandler(sink, handlerOpts)
}

// timeFormatter returns a ReplaceAttr that renders record timestamps with
// the given layout, or nil to keep slog's default rendering.
func timeFormatter(layout string) func([]string, slog.Attr) slog.Attr {
	if layout == "" {
		return nil
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
			a.Value = slog.StringValue(a.Value.Time().Format(layout))
		}
		return a
	}
}

// kibToWholeMiB converts the KiB rotation threshold to whole MiB for
// lumberjack, rounding up so small thresholds still rotate.
func kibToWholeMiB(kib int) int {
	if kib <= 0 {
		return 1
	}
	mib := (kib + 1023) / 1024
	if mib < 1 {
		return 1
	}
	return mib
}

// banner emits the fixed startup block right after setup.
func banner(logger *slog.Logger, opts SetupOptions) {
	rule := strings.Repeat("#", 80)
	logger.Info(rule)
	logger.Info(fmt.Sprintf("#%s#", centered(opts.AppName, 78)))
	logger.Info(rule)
	logger.Info(fmt.Sprintf("Started application %s with environment %s", opts.AppName, opts.Environment))
	if opts.SessionID != "" {
		logger.Info(fmt.Sprintf("Session id is %s", opts.SessionID))
	}
	if wd, err := os.Getwd(); err == nil {
		logger.Info(fmt.Sprintf("Current working directory is %s", wd))
	}
	logger.Info(fmt.Sprintf("Successfully loaded configuration from %s", opts.ConfigFile))
	logger.Info(fmt.Sprintf("Logging to %s", opts.LogFile))
}

// centered pads s with spaces to width. Strings wider than width are
// returned unchanged.
func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// logInternal forwards a subsystem-tagged message to the process logger.
func logInternal(level slog.Level, subsystem string, err error, messageFmt string, args ...any) {
	logger := slog.Default()
	if !logger.Enabled(context.Background(), level) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...any) {
	logInternal(slog.LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...any) {
	logInternal(slog.LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...any) {
	logInternal(slog.LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...any) {
	logInternal(slog.LevelError, subsystem, err, messageFmt, args...)
}
