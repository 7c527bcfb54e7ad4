// Command navbridge-demo shows a parent container in the terminal and lets
// you push leaf screens wired with any of the bridge strategies.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/bridge"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/constants"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/tui"
	"github.com/joho/godotenv"
)

var (
	configPath string
	strategy   string
	debug      bool
)

func init() {
	flag.StringVar(
		&configPath,
		"config",
		constants.DefaultConfigPath,
		"Path to the TOML configuration file",
	)
	flag.StringVar(
		&strategy,
		"strategy",
		"",
		"Bridge strategy: channel, weakref or delegate (overrides config and environment)",
	)
	flag.BoolVar(&debug, "debug", false, "Log library internals at debug level")
}

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "navbridge-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := navbridge.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if strategy != "" {
		s, err := bridge.ParseStrategy(strategy)
		if err != nil {
			return navbridge.NewConfigError("strategy flag", err)
		}
		cfg.Strategy = s
	}

	navbridge.Init(navbridge.Options{
		LogPath:  cfg.Log.Path,
		LogLevel: cfg.Log.Level,
		Debug:    debug,
	})
	defer navbridge.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, cfg)
}
