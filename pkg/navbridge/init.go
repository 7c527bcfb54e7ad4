// Package navbridge compares two ways of building a screen inside one
// navigation stack: a reducer-driven container whose state only changes
// through a dispatch loop, and a freestanding view model mutated directly
// by its view. The interesting part is the bridge that carries a value from
// the view model back into the container and closes the screen.
//
// The pieces live in subpackages:
//
//   - router: the navigation stack and destination table
//   - store: the dispatch loop and effects
//   - viewmodel: the leaf screen's counter
//   - bridge: the three wiring strategies
//   - feature: the parent container built from all of the above
//   - tui: a terminal view layer for trying it out
package navbridge

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/constants"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
)

// Options configures logging for the library and the program using it.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level name ("debug", "info", ...)
	Debug    bool   // Also log library internals at debug level
}

// Init sets up logging. Call it once before creating stores.
// Library internals log at debug level when Debug is set, when
// NAVBRIDGE_DEBUG is set or in development mode, and only errors otherwise.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() or any logging to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
