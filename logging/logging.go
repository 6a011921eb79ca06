// Package logging builds the application logger
// The TUI owns stdout, so logs only ever go to a file, and only in debug mode
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a no-op logger unless debug is set, in which case it appends JSON lines to dir/file
// The returned cleanup flushes the logger and is always non-nil
func New(dir, file string, debug bool) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop(), func() {}, fmt.Errorf("create log dir %s: %w", dir, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{filepath.Join(dir, file)}
	config.ErrorOutputPaths = []string{filepath.Join(dir, file)}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), func() {}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
