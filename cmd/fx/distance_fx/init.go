package distance_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatrasetu/internal/config"
	"yatrasetu/internal/services"
)

var Module = fx.Provide(provideDistanceService)

func provideDistanceService(cfg config.Config, logger *zap.Logger) (services.DistanceServiceInterface, error) {
	if cfg.Maps.APIKey == "" {
		logger.Info("MAPS_API_KEY is empty, directions will omit distances")
		return nil, nil
	}
	client, err := services.NewGoogleDistanceClient(cfg.Maps.APIKey, services.NewInMemoryRouteCache(7*24*time.Hour))
	if err != nil {
		return nil, err
	}
	return client, nil
}
