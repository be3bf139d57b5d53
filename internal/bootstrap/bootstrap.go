// Package bootstrap wires configuration into the voice search pipeline.
// The HTTP server and the CLI share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/config"
	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/infrastructure/cache"
	"github.com/souqly/voicesearch/internal/infrastructure/catalog"
	"github.com/souqly/voicesearch/internal/lexicon"
	"github.com/souqly/voicesearch/internal/observability/logging"
	"github.com/souqly/voicesearch/internal/observability/metrics"
	"github.com/souqly/voicesearch/internal/usecase"
)

// ServiceName identifies this service in logs and health checks
const ServiceName = "souqly-voicesearch"

const redisDialTimeout = 3 * time.Second

// App holds the long-lived components built from configuration
type App struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Metrics     *metrics.Metrics
	Lexicon     *lexicon.Lexicon
	VoiceSearch *usecase.VoiceSearchService

	closers []func() error
}

// NewLogger builds the process logger from the log section
func NewLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: ServiceName,
	})
}

// New builds the lexicon, catalog client, cache and voice search service.
// A Redis cache that cannot be reached falls back to the in-memory cache.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	lex, err := lexicon.LoadFile(cfg.Lexicon.File)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		Lexicon: lex,
	}

	var client domain.CatalogClient = catalog.NewClient(CatalogConfig(cfg), &logger)

	store, err := app.newCache(ctx)
	if err != nil {
		return nil, err
	}
	if store != nil {
		client = catalog.NewCachedClient(client, store, cfg.Cache.TTL, &logger).
			WithObserver(app.Metrics)
	}

	app.VoiceSearch = usecase.NewVoiceSearchService(client, lex, usecase.VoiceSearchConfig{
		Timeout:  cfg.Search.Timeout,
		Ranking:  RankingConfig(cfg),
		Recorder: app.Metrics,
	}, &logger)

	logger.Info().
		Str("catalog", cfg.Catalog.BaseURL).
		Str("cache", cfg.Cache.Type).
		Dur("cache_ttl", cfg.Cache.TTL).
		Dur("search_timeout", cfg.Search.Timeout).
		Bool("lexicon_extended", cfg.Lexicon.File != "").
		Msg("voice search pipeline ready")

	return app, nil
}

// Close releases the cache connections and background workers
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newCache returns nil when caching is disabled
func (a *App) newCache(ctx context.Context) (domain.CacheRepository, error) {
	cfg := a.Config.Cache

	switch cfg.Type {
	case "none":
		return nil, nil
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			Prefix:      cfg.RedisPrefix,
			DialTimeout: redisDialTimeout,
		})
		if err == nil {
			a.closers = append(a.closers, redisCache.Close)
			return redisCache, nil
		}
		a.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory cache")
		fallthrough
	case "memory", "":
		memoryCache := cache.NewMemoryCache(cfg.CleanupInterval)
		a.closers = append(a.closers, memoryCache.Close)
		return memoryCache, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// CatalogConfig maps the catalog, breaker and rate limit sections onto the client settings
func CatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{
		BaseURL:        cfg.Catalog.BaseURL,
		ConsumerKey:    cfg.Catalog.ConsumerKey,
		ConsumerSecret: cfg.Catalog.ConsumerSecret,
		PerPage:        cfg.Catalog.PerPage,
		Timeout:        cfg.Catalog.Timeout,
		RateLimit:      cfg.RateLimit.Catalog,
		RateBurst:      cfg.RateLimit.CatalogBurst,
		Breaker: catalog.BreakerConfig{
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			OpenTimeout:  cfg.Breaker.OpenTimeout,
			MinRequests:  cfg.Breaker.MinRequests,
			FailureRatio: cfg.Breaker.FailureRatio,
		},
	}
}

// RankingConfig maps the ranking section onto the scoring weights
func RankingConfig(cfg *config.Config) usecase.RankingConfig {
	r := cfg.Ranking
	return usecase.RankingConfig{
		ProductTypeWeight: r.ProductTypeWeight,
		ConcernWeight:     r.ConcernWeight,
		SkinTypeWeight:    r.SkinTypeWeight,
		SalesDivisor:      r.SalesDivisor,
		SalesCap:          r.SalesCap,
		LowPriceMax:       r.LowPriceMax,
		HighPriceMin:      r.HighPriceMin,
	}
}
