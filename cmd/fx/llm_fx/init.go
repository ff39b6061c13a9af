package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatrasetu/internal/config"
	"yatrasetu/pkg/utils"
)

var Module = fx.Provide(ProvideChatClient)

// ProvideChatClient picks the chat backend from LLM_PROVIDER. A missing key
// yields a nil client and every caller falls back to its offline path.
func ProvideChatClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (utils.ChatClientInterface, error) {
	switch cfg.LLM.Provider {
	case "groq", "openai":
		if cfg.LLM.APIKey == "" {
			logger.Warn("GROQ_API_KEY is empty, itineraries will be synthesized offline")
			return nil, nil
		}
		logger.Info("chat client ready", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
		return utils.NewOpenAIChatClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model), nil
	case "gemini":
		if cfg.LLM.GeminiKey == "" {
			logger.Warn("GEMINI_API_KEY is empty, itineraries will be synthesized offline")
			return nil, nil
		}
		client, err := utils.NewGeminiChatClient(context.Background(), cfg.LLM.GeminiKey, cfg.LLM.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return client.Close() }})
		logger.Info("chat client ready", zap.String("provider", "gemini"), zap.String("model", cfg.LLM.GeminiModel))
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'groq', 'openai' or 'gemini'", cfg.LLM.Provider)
	}
}
