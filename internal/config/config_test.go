package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LLM_PROVIDER", "LLM_BASE_URL", "LLM_MODEL", "TRANSLATION_CACHE_TTL", "DIRECTIONS_ORIGIN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "llama3-70b-8192", cfg.LLM.Model)
	assert.Equal(t, 24*time.Hour, cfg.Translation.CacheTTL)
	assert.Equal(t, "Ahmedabad, Gujarat", cfg.Maps.Origin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("TRANSLATION_CACHE_TTL", "90m")
	t.Setenv("GROQ_API_KEY", "gsk_x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 90*time.Minute, cfg.Translation.CacheTTL)
	assert.Equal(t, "gsk_x", cfg.LLM.APIKey)
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("TRANSLATION_CACHE_TTL", "soon")
	assert.Equal(t, time.Hour, envOrDefaultDuration("TRANSLATION_CACHE_TTL", time.Hour))
}
