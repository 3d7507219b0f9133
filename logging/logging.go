// SPDX-License-Identifier: MIT
// Package logging builds the zap logger used by the graphtrace CLI and
// pipeline. Library packages (core, bfs, dfs, dataset, render, export) do
// not log.
package logging

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/graphtrace/config"
)

// NewLogger builds a zap logger from cfg. Format "console" selects the
// development encoder, "auto" selects it only when stderr is a terminal,
// and anything else produces JSON. Unknown levels fall back to info.
func NewLogger(cfg config.Log) (*zap.Logger, error) {
	var zapCfg zap.Config
	if Console(cfg.Format, os.Stderr.Fd()) {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.Level))

	return zapCfg.Build()
}

// Console reports whether format resolves to the console encoder for the
// output descriptor fd.
func Console(format string, fd uintptr) bool {
	switch strings.ToLower(format) {
	case config.FormatConsole:
		return true
	case config.FormatAuto:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}

// Level maps a level name to a zapcore.Level, defaulting to info.
func Level(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
