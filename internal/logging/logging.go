package logging

import (
	"fmt"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the root logger from the LOG_* settings.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = level
	return zcfg.Build()
}

// Named returns a sugared child logger, or a no-op logger when root is nil.
func Named(root *zap.Logger, name string) *zap.SugaredLogger {
	if root == nil {
		return zap.NewNop().Sugar()
	}
	return root.Named(name).Sugar()
}
