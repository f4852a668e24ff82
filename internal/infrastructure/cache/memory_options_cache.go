package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
)

var _ ports.OptionsCache = (*MemoryOptionsCache)(nil)

type memEntry struct {
	opts      *dto.FilterOptions
	expiresAt time.Time
}

// MemoryOptionsCache caché en proceso para despliegues de una sola instancia (sin Redis).
type MemoryOptionsCache struct {
	mu      sync.RWMutex
	entries map[string]memEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryOptionsCache(ttl time.Duration) *MemoryOptionsCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryOptionsCache{entries: map[string]memEntry{}, ttl: ttl, now: time.Now}
}

func (c *MemoryOptionsCache) Get(_ context.Context, shop string) (*dto.FilterOptions, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[shop]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.opts, true, nil
}

func (c *MemoryOptionsCache) Set(_ context.Context, shop string, opts *dto.FilterOptions) error {
	c.mu.Lock()
	c.entries[shop] = memEntry{opts: opts, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryOptionsCache) Invalidate(_ context.Context, shop string) error {
	c.mu.Lock()
	delete(c.entries, shop)
	c.mu.Unlock()
	return nil
}
