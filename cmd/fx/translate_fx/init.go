package translate_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatrasetu/internal/api/controllers"
	"yatrasetu/internal/services"
	mem "yatrasetu/pkg/memcache"
	"yatrasetu/pkg/utils"
)

var Module = fx.Provide(provideTranslateService, provideTranslateController)

func provideTranslateService(llm utils.ChatClientInterface, cache mem.TranslationStore, logger *zap.Logger) services.TranslateServiceInterface {
	return services.NewTranslateService(llm, cache, logger)
}

func provideTranslateController(translateService services.TranslateServiceInterface) *controllers.TranslateController {
	return controllers.NewTranslateController(translateService)
}
