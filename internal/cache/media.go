// Package cache keeps rarely changing lookups in memory.
package cache

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"story_ingester/internal/domain"
)

type MediaFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Medium, error)
}

// MediaCache serves media from memory for ttl after the first lookup.
// Lookup errors, not-found included, are never cached.
type MediaCache struct {
	next  MediaFinder
	cache *gocache.Cache
}

func NewMediaCache(next MediaFinder, ttl time.Duration) *MediaCache {
	return &MediaCache{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *MediaCache) FindByID(ctx context.Context, id int64) (*domain.Medium, error) {
	key := strconv.FormatInt(id, 10)
	if v, ok := c.cache.Get(key); ok {
		medium := *v.(*domain.Medium)
		return &medium, nil
	}

	medium, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cached := *medium
	c.cache.Set(key, &cached, gocache.DefaultExpiration)
	return medium, nil
}

// Invalidate drops the cached medium, if any.
func (c *MediaCache) Invalidate(id int64) {
	c.cache.Delete(strconv.FormatInt(id, 10))
}

func (c *MediaCache) Len() int {
	return c.cache.ItemCount()
}
