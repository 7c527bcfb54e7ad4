// Package constants defines shared constants and configuration values
// used throughout navbridge.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Environment variables that override the config file.
const (
	StrategyEnvVar = "NAVBRIDGE_STRATEGY"
	LocaleEnvVar   = "NAVBRIDGE_LOCALE"
	LogLevelEnvVar = "NAVBRIDGE_LOG_LEVEL"
	LogPathEnvVar  = "NAVBRIDGE_LOG_PATH"
	// DebugEnvVar turns on debug logging for the library packages.
	DebugEnvVar = "NAVBRIDGE_DEBUG"
)

// Defaults used when neither the config file nor the environment say
// otherwise.
const (
	DefaultConfigPath = "navbridge.toml"
	DefaultLocale     = "en"
	DefaultLogLevel   = "info"
	DefaultLogPath    = "logs/navbridge.log"
	// DefaultAccentColor is the accent of the terminal theme.
	DefaultAccentColor uint32 = 0x008080
)
