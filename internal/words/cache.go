package words

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/registry"
)

// Cached remembers successful fetches per difficulty, so cycling tiers
// does not hit the network each time. Failures are not cached.
type Cached struct {
	inner registry.Supplier
	cache *lru.Cache[config.Difficulty, []string]
}

// NewCached wraps inner with an LRU of the given size.
func NewCached(inner registry.Supplier, size int) (*Cached, error) {
	c, err := lru.New[config.Difficulty, []string](size)
	if err != nil {
		return nil, fmt.Errorf("words: create cache: %w", err)
	}
	return &Cached{inner: inner, cache: c}, nil
}

// FetchWords returns a copy of the cached pool or fetches a new one.
func (c *Cached) FetchWords(ctx context.Context, d config.Difficulty) ([]string, error) {
	if words, ok := c.cache.Get(d); ok {
		return append([]string(nil), words...), nil
	}
	words, err := c.inner.FetchWords(ctx, d)
	if err != nil {
		return nil, err
	}
	if len(words) > 0 {
		c.cache.Add(d, append([]string(nil), words...))
	}
	return words, nil
}

// Purge drops every cached pool.
func (c *Cached) Purge() {
	c.cache.Purge()
}
