package cmd

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. encoding is "json" or "console"; console
// output uses the development encoder.
func NewLogger(level, encoding string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	if encoding == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return cfg.Build()
}
