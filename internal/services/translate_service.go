package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/models/response_models"
	mem "yatrasetu/pkg/memcache"
	"yatrasetu/pkg/utils"
)

const (
	translateTemperature = 0.1
	translateMaxTokens   = 500

	confidencePhrasebook = 1.0
	confidenceModel      = 0.95
	confidenceWordByWord = 0.8
	confidencePassthru   = 0.6
)

var supportedLanguages = []response_models.Language{
	{Code: "en", Name: "English", Native: "English"},
	{Code: "gu", Name: "Gujarati", Native: "ગુજરાતી"},
	{Code: "hi", Name: "Hindi", Native: "हिंदी"},
}

var (
	gujaratiBlock = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0A80, Hi: 0x0AFF, Stride: 1}}}
	hindiBlock    = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0900, Hi: 0x097F, Stride: 1}}}
)

type TranslateServiceInterface interface {
	Translate(ctx context.Context, opts request_models.TranslationOptions) response_models.TranslationResult
	DetectLanguage(text string) string
	SupportedLanguages() []response_models.Language
}

type TranslateService struct {
	llm    utils.ChatClientInterface
	cache  mem.TranslationStore
	logger *zap.Logger
}

// NewTranslateService wires the tiers. A nil llm skips the model tier and a
// nil cache disables caching of model replies.
func NewTranslateService(llm utils.ChatClientInterface, cache mem.TranslationStore, logger *zap.Logger) TranslateServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslateService{llm: llm, cache: cache, logger: logger.Named("translate")}
}

// Translate walks phrasebook, model, word-by-word and bracketed passthrough
// in that order. It never fails.
func (s *TranslateService) Translate(ctx context.Context, opts request_models.TranslationOptions) response_models.TranslationResult {
	pair := opts.From + "-" + opts.To
	table, hasTable := phrasebook[pair]

	if hasTable {
		if out, ok := table[opts.Text]; ok {
			return result(out, opts.From, confidencePhrasebook)
		}
	}

	out, err := s.viaModel(ctx, opts)
	if err == nil {
		return result(out, opts.From, confidenceModel)
	}
	s.logger.Warn("model translation failed", zap.String("pair", pair), zap.Error(err))

	if hasTable {
		words := strings.Split(opts.Text, " ")
		for i, w := range words {
			clean := strings.Map(func(r rune) rune {
				if strings.ContainsRune(".,!?", r) {
					return -1
				}
				return r
			}, w)
			if out, ok := table[clean]; ok {
				words[i] = out
			} else {
				words[i] = clean
			}
		}
		return result(strings.Join(words, " "), opts.From, confidenceWordByWord)
	}

	label, ok := bracketLabels[pair]
	if !ok {
		label = "Translated"
	}
	return result(fmt.Sprintf("[%s: %s]", label, opts.Text), opts.From, confidencePassthru)
}

func (s *TranslateService) viaModel(ctx context.Context, opts request_models.TranslationOptions) (string, error) {
	if s.cache != nil {
		if out, ok := s.cache.Get(opts.From, opts.To, opts.Text); ok {
			return out, nil
		}
	}
	if s.llm == nil {
		return "", utils.ErrLLMUnavailable
	}

	system := fmt.Sprintf("You are a professional translator specializing in Indian languages. "+
		"Translate the given text from %s to %s. Provide only the translated text, nothing else. "+
		"Be accurate and natural in your translation.", languageName(opts.From), languageName(opts.To))

	out, err := s.llm.Complete(ctx, utils.ChatRequest{
		System:      system,
		User:        opts.Text,
		Temperature: translateTemperature,
		MaxTokens:   translateMaxTokens,
	})
	switch {
	case errors.Is(err, utils.ErrLLMEmptyContent):
		// an empty reply still counts as answered
		return opts.Text, nil
	case err != nil:
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return opts.Text, nil
	}
	if s.cache != nil {
		s.cache.Set(opts.From, opts.To, opts.Text, out)
		s.logger.Debug("cached model translation",
			zap.String("pair", opts.From+"-"+opts.To),
			zap.Int("entries", s.cache.Len()))
	}
	return out, nil
}

func (s *TranslateService) DetectLanguage(text string) string {
	for _, r := range text {
		if unicode.Is(gujaratiBlock, r) {
			return "gu"
		}
	}
	for _, r := range text {
		if unicode.Is(hindiBlock, r) {
			return "hi"
		}
	}
	return "en"
}

func (s *TranslateService) SupportedLanguages() []response_models.Language {
	return append([]response_models.Language(nil), supportedLanguages...)
}

func languageName(code string) string {
	for _, l := range supportedLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

func result(text, from string, confidence float64) response_models.TranslationResult {
	return response_models.TranslationResult{
		TranslatedText:         text,
		DetectedSourceLanguage: from,
		Confidence:             confidence,
	}
}
