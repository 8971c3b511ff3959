// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New builds a zap logger at the given level ("debug", "info", "warn",
// "error"). The logger is passed explicitly to consumers; there is no
// package-level instance.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	return cfg.Build()
}
