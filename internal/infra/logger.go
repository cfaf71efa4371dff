package infra

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"autopilot/internal/config"
)

// NewLogger builds the process-wide zap logger.
func NewLogger(cfg config.LogConfig, environment string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if environment != "production" {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "console":
		zcfg.Encoding = "console"
	case "", "json":
		zcfg.Encoding = "json"
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zcfg.Build()
}
