package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Cache keeps recently formatted recommendations in memory. The model
// and index never change after startup, so entries only expire to bound
// memory, not to refresh data.
type Cache struct {
	data    map[string]cachedEntry
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cachedEntry struct {
	sentence  string
	timestamp time.Time
}

// NewCache creates a recommendation cache.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &Cache{
		data:    make(map[string]cachedEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Key derives a cache key from everything that affects the result.
func (c *Cache) Key(company, text string, opts Options) string {
	keyData := fmt.Sprintf("%s|%s|%.3f|%.3f|%d",
		company, text, opts.CollaborativeWeight, opts.ContentWeight, opts.TopN)
	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:16])
}

// Get returns a cached sentence if present and fresh.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, ok := c.data[key]; ok {
		if time.Since(entry.timestamp) < c.ttl {
			return entry.sentence, true
		}
	}
	return "", false
}

// Set stores a sentence, evicting expired entries when full.
func (c *Cache) Set(key, sentence string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = cachedEntry{sentence: sentence, timestamp: time.Now()}
}

func (c *Cache) cleanup() {
	now := time.Now()
	for key, entry := range c.data {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}

	// Still full: drop the oldest entry
	if len(c.data) >= c.maxSize {
		oldest := time.Now()
		oldestKey := ""
		for key, entry := range c.data {
			if entry.timestamp.Before(oldest) {
				oldest = entry.timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}
