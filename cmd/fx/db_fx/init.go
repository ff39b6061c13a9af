package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatrasetu/internal/config"
	"yatrasetu/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(context.Background(), cfg.DB.DSN, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return infra.ClosePostgresql(db, logger)
		},
	})
	return db, nil
}
