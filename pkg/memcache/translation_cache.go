// pkg/memcache/translation_cache.go
package mem

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type TranslationStore interface {
	Set(from, to, text, translated string)

	// Get returns the cached translation if it has not expired.
	Get(from, to, text string) (string, bool)

	Len() int
}

type TranslationCache struct {
	c *gocache.Cache
}

// NewTranslationCache keeps entries for ttl and sweeps expired ones every
// 2*ttl. A non-positive ttl keeps entries until the process exits.
func NewTranslationCache(ttl time.Duration) *TranslationCache {
	if ttl <= 0 {
		return &TranslationCache{c: gocache.New(gocache.NoExpiration, 0)}
	}
	return &TranslationCache{c: gocache.New(ttl, 2*ttl)}
}

func key(from, to, text string) string {
	return from + "-" + to + "\x00" + text
}

func (s *TranslationCache) Set(from, to, text, translated string) {
	s.c.SetDefault(key(from, to, text), translated)
}

func (s *TranslationCache) Get(from, to, text string) (string, bool) {
	v, ok := s.c.Get(key(from, to, text))
	if !ok {
		return "", false
	}
	out, ok := v.(string)
	return out, ok
}

func (s *TranslationCache) Len() int {
	return s.c.ItemCount()
}
