package repository

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a process-local CacheRepository holding at most maxEntries
// values. The least recently used entry is evicted first, and entries older
// than the TTL read as misses. A zero TTL keeps entries until evicted.
type MemoryCache struct {
	entries *lru.Cache[string, memoryEntry]
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(maxEntries int, ttl time.Duration) (*MemoryCache, error) {
	return newMemoryCache(maxEntries, ttl, time.Now)
}

func newMemoryCache(maxEntries int, ttl time.Duration, now func() time.Time) (*MemoryCache, error) {
	if ttl < 0 {
		return nil, fmt.Errorf("memory cache ttl must not be negative, got %s", ttl)
	}
	entries, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &MemoryCache{entries: entries, ttl: ttl, now: now}, nil
}

func (m *MemoryCache) Get(key string) (string, bool) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.entries.Remove(key)
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.entries.Add(key, entry)
	return nil
}

func (m *MemoryCache) Len() int {
	return m.entries.Len()
}
