// Package pagecache caches rendered pages per locale.
package pagecache

import (
	"sync"
	"time"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
)

// DefaultTTL bounds how long a cached page may serve without revalidation.
const DefaultTTL = 5 * time.Minute

type entry struct {
	html      string
	expiresAt time.Time
}

// Cache is a thread-safe locale-keyed page cache. Pages are cached per locale
// so an Arabic render never serves an English request, and a save invalidates
// only the locale it was submitted under.
type Cache struct {
	mu      sync.RWMutex
	entries map[i18n.Locale]entry
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the cache entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty page cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[i18n.Locale]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get returns the cached page for a locale when present and fresh.
func (c *Cache) Get(locale i18n.Locale) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[locale]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if c.now().After(e.expiresAt) {
		c.Invalidate(locale)
		return "", false
	}
	return e.html, true
}

// Set stores a rendered page for a locale.
func (c *Cache) Set(locale i18n.Locale, html string) {
	c.mu.Lock()
	c.entries[locale] = entry{html: html, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops the cached page for one locale only.
func (c *Cache) Invalidate(locale i18n.Locale) {
	c.mu.Lock()
	delete(c.entries, locale)
	c.mu.Unlock()
}

// InvalidateAll drops every cached page.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[i18n.Locale]entry)
	c.mu.Unlock()
}
