package navbridge

import (
	"errors"
	"os"
	"strings"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/bridge"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/constants"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config is the demo program's configuration, read from a TOML file.
//
//	strategy = "delegate"
//	locale = "de"
//	initial_count = 3
//	accent_color = 0x008080
//
//	[log]
//	path = "logs/navbridge.log"
//	level = "debug"
type Config struct {
	Strategy     bridge.Strategy `toml:"strategy"`
	Locale       string          `toml:"locale"`
	InitialCount int             `toml:"initial_count"`
	AccentColor  uint32          `toml:"accent_color"`
	Log          LogConfig       `toml:"log"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Strategy:    bridge.StrategyChannel,
		Locale:      constants.DefaultLocale,
		AccentColor: constants.DefaultAccentColor,
		Log: LogConfig{
			Path:  constants.DefaultLogPath,
			Level: constants.DefaultLogLevel,
		},
	}
}

// LoadConfig reads path on top of the defaults. A missing file is not an
// error. Unknown keys are logged and ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, NewConfigError("stat", err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, NewConfigError("decode", err)
	}
	for _, key := range md.Undecoded() {
		internal.GetInternalLogger().Warn("unknown config key", "key", key.String(), "file", path)
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides the configuration with the NAVBRIDGE_* environment
// variables that are set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(constants.StrategyEnvVar); ok && v != "" {
		s, err := bridge.ParseStrategy(v)
		if err != nil {
			return NewConfigError("strategy", err)
		}
		c.Strategy = s
	}
	if v, ok := os.LookupEnv(constants.LocaleEnvVar); ok && v != "" {
		c.Locale = v
	}
	if v, ok := os.LookupEnv(constants.LogLevelEnvVar); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(constants.LogPathEnvVar); ok && v != "" {
		c.Log.Path = v
	}
	return c.Validate()
}

// Validate checks the values that cannot be defaulted silently.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return NewConfigError("locale", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return NewConfigError("log level", errors.New("unknown level "+c.Log.Level))
	}
	return nil
}
