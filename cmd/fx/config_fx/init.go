package config_fx

import (
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"yatrasetu/internal/config"
	"yatrasetu/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenManager,
)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func provideTokenManager(cfg config.Config, logger *zap.Logger) *utils.TokenManager {
	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, review submission will reject every token")
	}
	return utils.NewTokenManager(cfg.Auth.JWTSecret, time.Hour)
}
