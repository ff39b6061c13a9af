package destination_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatrasetu/internal/api/controllers"
	"yatrasetu/internal/config"
	"yatrasetu/internal/services"
)

var Module = fx.Provide(
	services.NewDestinationService,
	provideDirectionsService,
	controllers.NewDestinationController,
	controllers.NewVoiceController,
)

func provideDirectionsService(
	destinations services.DestinationServiceInterface,
	distance services.DistanceServiceInterface,
	cfg config.Config,
	logger *zap.Logger,
) services.DirectionsServiceInterface {
	return services.NewDirectionsService(destinations, distance, cfg.Maps.Origin, logger)
}
