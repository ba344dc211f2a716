// Package cache provides a content-addressed, TTL-based store for
// generation responses, decoupling idempotent prompt pairs from
// redundant paid API calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"
)

// DefaultTTL bounds staleness of cached generations.
const DefaultTTL = 24 * time.Hour

type entry struct {
	value     string
	createdAt time.Time
}

// Cache is an in-memory TTL store keyed by prompt hash. Entries expire
// lazily on read; there is no background sweeper. Safe for concurrent
// use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given time-to-live. A zero TTL means
// every entry is already expired on the next read, which effectively
// disables caching without special-casing callers.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives the deterministic cache key for a prompt pair.
func Key(systemPrompt, userPrompt string) string {
	h := sha256.New()
	h.Write([]byte(systemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(userPrompt))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached value for key. Expired entries are deleted
// and reported as absent.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		delete(c.entries, key)
		slog.Debug("cache entry expired", slog.String("key", shortKey(key)))
		return "", false
	}
	slog.Debug("cache hit", slog.String("key", shortKey(key)))
	return e.value, true
}

// shortKey abbreviates a key for logging. Keys are usually 64 hex
// characters, but Get and Set accept arbitrary strings.
func shortKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}

// Set stores value under key, overwriting any previous entry.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, createdAt: c.now()}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, including any not yet
// lazily expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
