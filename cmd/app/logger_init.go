package main

import (
	"log/slog"

	"github.com/osse101/AtelierGuildRank_Go/internal/config"
	"github.com/osse101/AtelierGuildRank_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) *slog.Logger {
	return logger.InitLogger(loggerConfig(cfg))
}

// loggerConfig starts from the preset for cfg.Environment and applies explicit settings on top
func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.ConfigForEnvironment(cfg.Environment)

	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	if cfg.ServiceName != "" {
		lc.ServiceName = cfg.ServiceName
	}
	if cfg.Version != "" {
		lc.Version = cfg.Version
	}
	// Source info stays on where the preset enables it, otherwise only when asked for
	lc.AddSource = lc.AddSource || cfg.LogAddSource

	if cfg.LogFile != "" {
		lc = lc.WithFile(cfg.LogFile, cfg.LogFileMaxSizeMB)
	}
	return lc
}
