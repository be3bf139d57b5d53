package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

const cacheKeyPrefix = "catalog:search:"

// CacheObserver is notified of cache hits and misses
type CacheObserver interface {
	ObserveCache(hit bool)
}

// CachedClient serves repeated searches from a cache and delegates misses to
// the wrapped client. Cache failures are logged and never fail a search.
type CachedClient struct {
	next     domain.CatalogClient
	cache    domain.CacheRepository
	ttl      time.Duration
	observer CacheObserver
	logger   zerolog.Logger
}

// NewCachedClient wraps next with a search-result cache
func NewCachedClient(next domain.CatalogClient, cache domain.CacheRepository, ttl time.Duration, logger *zerolog.Logger) *CachedClient {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	log := zerolog.Nop()
	if logger != nil {
		log = logger.With().Str("component", "catalog_cache").Logger()
	}
	return &CachedClient{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

// WithObserver sets the hit/miss observer
func (c *CachedClient) WithObserver(o CacheObserver) *CachedClient {
	c.observer = o
	return c
}

// SearchProducts returns cached products for the query or fetches and stores them
func (c *CachedClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	key := CacheKey(query)

	if products, ok := c.get(ctx, key); ok {
		c.observe(true)
		return products, nil
	}
	c.observe(false)

	products, err := c.next.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, products)
	return products, nil
}

// CacheKey builds the cache key for a search query
func CacheKey(query string) string {
	return cacheKeyPrefix + lexicon.Normalize(query)
}

func (c *CachedClient) get(ctx context.Context, key string) ([]domain.Product, bool) {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		_ = c.cache.Delete(ctx, key)
		return nil, false
	}
	return products, true
}

func (c *CachedClient) set(ctx context.Context, key string, products []domain.Product) {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *CachedClient) observe(hit bool) {
	if c.observer != nil {
		c.observer.ObserveCache(hit)
	}
}
