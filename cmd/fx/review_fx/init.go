package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatrasetu/internal/api/controllers"
	"yatrasetu/internal/repositories"
	"yatrasetu/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
