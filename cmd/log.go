package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the diagnostics logger, writing to stderr. Only warnings
// are logged unless verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
