package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatrasetu/internal/api/controllers"
	"yatrasetu/internal/repositories"
	"yatrasetu/internal/services"
	"yatrasetu/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService, provideItineraryController,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepositoryInterface {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	llm utils.ChatClientInterface,
	repo repositories.ItineraryRepositoryInterface,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(llm, repo, logger)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
