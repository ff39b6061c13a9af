package memcache_fx

import (
	"go.uber.org/fx"

	"yatrasetu/internal/config"
	mem "yatrasetu/pkg/memcache"
)

var Module = fx.Provide(provideTranslationCache)

func provideTranslationCache(cfg config.Config) mem.TranslationStore {
	return mem.NewTranslationCache(cfg.Translation.CacheTTL)
}
