package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"yatrasetu/internal/models/request_models"
	mem "yatrasetu/pkg/memcache"
	"yatrasetu/pkg/utils"
)

func opts(text, from, to string) request_models.TranslationOptions {
	return request_models.TranslationOptions{Text: text, From: from, To: to}
}

func TestTranslatePhrasebookWins(t *testing.T) {
	chat := &fakeChat{reply: "should not be used"}
	svc := NewTranslateService(chat, nil, nil)

	got := svc.Translate(context.Background(), opts("Thank you", "en", "gu"))
	assert.Equal(t, "આભાર", got.TranslatedText)
	assert.Equal(t, "en", got.DetectedSourceLanguage)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Empty(t, chat.calls)
}

func TestTranslateReversePhrasebook(t *testing.T) {
	svc := NewTranslateService(nil, nil, nil)

	got := svc.Translate(context.Background(), opts("આભાર", "gu", "en"))
	assert.Equal(t, "Thank you", got.TranslatedText)
	assert.Equal(t, 1.0, got.Confidence)

	got = svc.Translate(context.Background(), opts("क्या आप मेरी मदद कर सकते हैं?", "hi", "en"))
	assert.Equal(t, "Can you help me?", got.TranslatedText)

	assert.Len(t, phrasebook["gu-en"], 10)
	assert.Len(t, phrasebook["hi-en"], 8)
}

func TestTranslateUsesModel(t *testing.T) {
	chat := &fakeChat{reply: "  મને ચા ગમે છે \n"}
	svc := NewTranslateService(chat, nil, nil)

	got := svc.Translate(context.Background(), opts("I like tea", "en", "gu"))
	assert.Equal(t, "મને ચા ગમે છે", got.TranslatedText)
	assert.Equal(t, 0.95, got.Confidence)

	require.Len(t, chat.calls, 1)
	assert.InDelta(t, 0.1, chat.calls[0].Temperature, 1e-6)
	assert.Equal(t, 500, chat.calls[0].MaxTokens)
	assert.Contains(t, chat.calls[0].System, "from English to Gujarati")
	assert.Equal(t, "I like tea", chat.calls[0].User)
}

func TestTranslateEmptyModelReplyKeepsText(t *testing.T) {
	svc := NewTranslateService(&fakeChat{err: utils.ErrLLMEmptyContent}, nil, nil)

	got := svc.Translate(context.Background(), opts("I like tea", "en", "hi"))
	assert.Equal(t, "I like tea", got.TranslatedText)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestTranslateWordByWord(t *testing.T) {
	svc := NewTranslateService(&fakeChat{err: utils.ErrLLMUnavailable}, nil, nil)

	got := svc.Translate(context.Background(), opts("Water, Food!", "en", "gu"))
	assert.Equal(t, "પાણી ખોરાક", got.TranslatedText)
	assert.Equal(t, 0.8, got.Confidence)

	got = svc.Translate(context.Background(), opts("Temple please.", "en", "hi"))
	assert.Equal(t, "मंदिर please", got.TranslatedText)
}

func TestTranslateBracketPassthrough(t *testing.T) {
	svc := NewTranslateService(nil, nil, nil)

	tests := []struct {
		from, to, want string
	}{
		{"en", "fr", "[Translated: hello there]"},
		{"gu", "hi", "[Translated: hello there]"},
	}
	for _, tt := range tests {
		got := svc.Translate(context.Background(), opts("hello there", tt.from, tt.to))
		assert.Equal(t, tt.want, got.TranslatedText)
		assert.Equal(t, 0.6, got.Confidence)
	}
}

func TestTranslateCachesModelReplies(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	chat := &fakeChat{reply: "मुझे चाय पसंद है"}
	svc := NewTranslateService(chat, mem.NewTranslationCache(time.Minute), zap.New(core))

	first := svc.Translate(context.Background(), opts("I like tea", "en", "hi"))
	second := svc.Translate(context.Background(), opts("I like tea", "en", "hi"))
	assert.Equal(t, first, second)
	assert.Len(t, chat.calls, 1)

	cached := logs.FilterMessage("cached model translation").All()
	require.Len(t, cached, 1)
	assert.Equal(t, "en-hi", cached[0].ContextMap()["pair"])
	assert.EqualValues(t, 1, cached[0].ContextMap()["entries"])
}

func TestDetectLanguage(t *testing.T) {
	svc := NewTranslateService(nil, nil, nil)
	assert.Equal(t, "gu", svc.DetectLanguage("કેમ છો"))
	assert.Equal(t, "hi", svc.DetectLanguage("नमस्ते"))
	assert.Equal(t, "en", svc.DetectLanguage("hello"))
	assert.Equal(t, "gu", svc.DetectLanguage("hello નમસ્તે नमस्ते"))
	assert.Equal(t, "en", svc.DetectLanguage(""))
}

func TestSupportedLanguages(t *testing.T) {
	langs := NewTranslateService(nil, nil, nil).SupportedLanguages()
	require.Len(t, langs, 3)
	assert.Equal(t, "gu", langs[1].Code)
	assert.Equal(t, "ગુજરાતી", langs[1].Native)
}
