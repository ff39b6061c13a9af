package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranslationCacheRoundTrip(t *testing.T) {
	c := NewTranslationCache(time.Minute)

	_, ok := c.Get("en", "gu", "Hello friend")
	assert.False(t, ok)

	c.Set("en", "gu", "Hello friend", "નમસ્તે મિત્ર")
	got, ok := c.Get("en", "gu", "Hello friend")
	assert.True(t, ok)
	assert.Equal(t, "નમસ્તે મિત્ર", got)

	_, ok = c.Get("en", "hi", "Hello friend")
	assert.False(t, ok, "pair is part of the key")
	assert.Equal(t, 1, c.Len())
}

func TestTranslationCacheExpires(t *testing.T) {
	c := NewTranslationCache(20 * time.Millisecond)
	c.Set("gu", "en", "આભાર", "Thank you")

	assert.Eventually(t, func() bool {
		_, ok := c.Get("gu", "en", "આભાર")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestTranslationCacheNoExpiry(t *testing.T) {
	c := NewTranslationCache(0)
	c.Set("en", "hi", "Water", "पानी")
	got, ok := c.Get("en", "hi", "Water")
	assert.True(t, ok)
	assert.Equal(t, "पानी", got)
}
