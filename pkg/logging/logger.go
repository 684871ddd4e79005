// Package logging builds the zap loggers used by the server and the dashboard.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-style JSON logger at level. An empty file logs to
// stderr; the dashboard passes a file so the terminal UI stays clean.
func New(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}
	return cfg.Build()
}

// Must is New for main packages: it falls back to a no-op logger rather than
// refusing to start over a logging misconfiguration.
func Must(level, file string) *zap.Logger {
	l, err := New(level, file)
	if err != nil {
		fmt.Printf("[log] %v, logging disabled\n", err)
		return zap.NewNop()
	}
	return l
}
