// Package logging holds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

var sugar = zap.NewNop().Sugar()

// Init configures the global logger. Debug selects zap's development
// config with debug-level output.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	sugar = l.Sugar()
	return nil
}

// Debugf logs a formatted debug message.
func Debugf(format string, v ...any) { sugar.Debugf(format, v...) }

// Infof logs a formatted info message.
func Infof(format string, v ...any) { sugar.Infof(format, v...) }

// Errorf logs a formatted error message.
func Errorf(format string, v ...any) { sugar.Errorf(format, v...) }

// Sync flushes buffered log entries; call on shutdown.
func Sync() { _ = sugar.Sync() }
