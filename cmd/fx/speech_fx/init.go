package speech_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatrasetu/internal/services"
)

var Module = fx.Provide(provideSpeechService)

// Recognition and synthesis happen in the browser; the server only reports
// that it has neither.
func provideSpeechService(logger *zap.Logger) services.SpeechServiceInterface {
	return services.NewSpeechService(services.UnsupportedRecognizer{}, services.UnsupportedSynthesizer{}, logger)
}
