// Package logging configures convoke's process-wide logging.
//
// This package implements a logging system built on Go's standard slog
// package. Setup builds the handler set for the active environment: a
// size-rotating file sink (via lumberjack) and, when the environment asks for
// it, a color console sink. The built logger is installed as the process
// default so that both slog calls and the stdlib log package flow through the
// same handlers.
//
// # Re-initialization
//
// Activating a different environment calls Setup again. Each call closes the
// previous file sink and replaces the default logger wholesale, so repeated
// environment switches never accumulate handlers or leak file handles.
//
// # Usage
//
//	logger, err := logging.Setup(logging.SetupOptions{
//	    AppName:     "convoke",
//	    Environment: "prod",
//	    LogFile:     "/var/log/convoke/node/alpha-prod-system.log",
//	    Level:       "info",
//	    Format:      "text",
//	    MaxSize:     1024, // KiB
//	    BackupCount: 5,
//	    UseConsole:  true,
//	})
//
//	// Subsystem-tagged helpers for the rest of the codebase:
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Error("Config", err, "Failed to load configuration from %s", path)
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering and categorization:
//
//   - **Bootstrap**: context construction and environment activation
//   - **Config**: configuration loading and discovery
//   - **Watcher**: configuration file watching
//
// # Thread Safety
//
// Setup serializes re-initialization behind a mutex. Logging through the
// installed handlers is safe from multiple goroutines; switching environments
// concurrently is not supported and is the owner's responsibility to avoid.
package logging
