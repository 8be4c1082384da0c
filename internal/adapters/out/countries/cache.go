package countries

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

// Cache keeps the country list in memory for ttl and passes state lookups
// through. Concurrent misses share one upstream call.
//
// A stale list is served when a reload fails; only a cold cache surfaces the
// upstream error.
type Cache struct {
	upstream ports.CountryDirectory
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger

	group singleflight.Group

	mu        sync.RWMutex
	countries []kernel.CodeLabel
	fetchedAt time.Time
}

// NewCache wraps upstream. A non-positive ttl keeps entries until Refresh.
func NewCache(upstream ports.CountryDirectory, ttl time.Duration) *Cache {
	return &Cache{
		upstream: upstream,
		ttl:      ttl,
		now:      time.Now,
		logger:   slog.Default().With("component", "country_cache"),
	}
}

func (c *Cache) Countries(ctx context.Context) ([]kernel.CodeLabel, error) {
	if cached, ok := c.cached(); ok {
		return cached, nil
	}

	countries, err := c.fetch(ctx, false)
	if err != nil {
		if stale := c.snapshot(); stale != nil {
			c.logger.Warn("serving stale countries", "error", err)
			return stale, nil
		}
		return nil, err
	}
	return countries, nil
}

func (c *Cache) States(ctx context.Context, countryCode string) ([]kernel.CodeLabel, error) {
	return c.upstream.States(ctx, countryCode)
}

// Refresh reloads the country list regardless of its age. The previous list
// is kept when the reload fails.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err := c.fetch(ctx, true)
	return err
}

func (c *Cache) fetch(ctx context.Context, force bool) ([]kernel.CodeLabel, error) {
	v, err, _ := c.group.Do("countries", func() (any, error) {
		// another flight may have filled the cache since the caller looked
		if cached, ok := c.cached(); ok && !force {
			return cached, nil
		}

		countries, err := c.upstream.Countries(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.countries = countries
		c.fetchedAt = c.now()
		c.mu.Unlock()

		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]kernel.CodeLabel)), nil
}

func (c *Cache) cached() ([]kernel.CodeLabel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.countries == nil {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return slices.Clone(c.countries), true
}

func (c *Cache) snapshot() []kernel.CodeLabel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.countries)
}
