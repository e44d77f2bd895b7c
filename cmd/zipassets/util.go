package main

import (
	"log/slog"

	"github.com/gregoryfmartin/zipassets/internal/config"
)

// loadConfig reads the configuration file, or the per user default when
// --config is not given, and applies --debug.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if debug {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return config.NewLogger(level)
}
