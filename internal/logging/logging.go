// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the application logger.
//
// The TUI owns stdout, so logs go to a rotated file under the
// application directory. The logger is constructed at startup and
// passed down explicitly; there is no package-level logger.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options control logger construction.
type Options struct {
	// Path of the log file (default: ~/.fundus-chat/fundus-chat.log).
	Path string

	// Debug lowers the level from Info to Debug.
	Debug bool
}

// New creates a JSON file logger with rotation. The log directory is
// created if missing.
func New(opts Options) (*zap.Logger, error) {
	path := opts.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".fundus-chat", "fundus-chat.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename: path,
			MaxSize:  10, // MB
			MaxAge:   28, // days
			Compress: true,
		}),
		level,
	)

	return zap.New(core), nil
}
