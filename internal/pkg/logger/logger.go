package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

// ZapLogger wraps zap with the configuration used across services.
type ZapLogger struct {
	*zap.Logger
}

// NewZapLogger creates a logger from application configuration.
// Format "console" produces human-readable development output,
// anything else structured JSON.
func NewZapLogger(cfg models.LoggerConfig) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.MessageKey = "message"
		zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &ZapLogger{Logger: l}, nil
}

// Close flushes any buffered log entries.
func (l *ZapLogger) Close() error {
	return l.Logger.Sync()
}
