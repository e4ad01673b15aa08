package pricecache

import (
	"context"
	"sync"
	"time"

	"github.com/de-tools/team-migration/pkg/models/domain"
)

type entry struct {
	quotes    domain.PriceQuotes
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache keeps quotes in process with a fixed TTL.
type MemoryCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]entry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (domain.PriceQuotes, bool, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return domain.PriceQuotes{}, false, nil
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		// A Set may have replaced the entry since the read lock was released.
		if cur, ok := c.items[key]; ok && cur.expired(c.now()) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return domain.PriceQuotes{}, false, nil
	}
	return e.quotes, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, quotes domain.PriceQuotes) error {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.items[key] = entry{quotes: quotes, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}
