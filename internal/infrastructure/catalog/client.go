package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/souqly/voicesearch/internal/domain"
)

const (
	searchPath     = "/wp-json/wc/v3/products"
	userAgent      = "Souqly-VoiceSearch/1.0"
	maxErrorBody   = 512
	defaultPerPage = 20
)

// BreakerConfig configures the circuit breaker in front of the catalog
type BreakerConfig struct {
	MaxRequests  uint32        // probes allowed while half-open
	Interval     time.Duration // closed-state counter reset period
	OpenTimeout  time.Duration // time spent open before probing
	MinRequests  uint32        // requests seen before the ratio is considered
	FailureRatio float64
}

// Config holds the catalog client settings
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	PerPage        int
	Timeout        time.Duration
	RateLimit      float64 // requests per second
	RateBurst      int
	Breaker        BreakerConfig
}

// Client searches a WooCommerce store through its REST API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	key         string
	secret      string
	perPage     int
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[[]domain.Product]
	logger      zerolog.Logger
}

// NewClient creates a new catalog client
func NewClient(cfg Config, logger *zerolog.Logger) *Client {
	log := zerolog.Nop()
	if logger != nil {
		log = logger.With().Str("component", "catalog").Logger()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = defaultPerPage
	}
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		key:         cfg.ConsumerKey,
		secret:      cfg.ConsumerSecret,
		perPage:     perPage,
		rateLimiter: rate.NewLimiter(limit, burst),
		breaker:     newBreaker(cfg.Breaker, log),
		logger:      log,
	}
}

func newBreaker(cfg BreakerConfig, log zerolog.Logger) *gobreaker.CircuitBreaker[[]domain.Product] {
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}
	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 5
	}
	ratio := cfg.FailureRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 0.5
	}

	return gobreaker.NewCircuitBreaker[[]domain.Product](gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: maxRequests,
		Interval:    cfg.Interval,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= ratio
		},
		IsSuccessful: func(err error) bool {
			// caller cancellation says nothing about the store's health
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})
}

// SearchProducts searches published products. A single attempt is made;
// every failure is reported as domain.ErrCatalogUnavailable.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	c.logger.Debug().Str("query", query).Msg("search products")

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrCatalogUnavailable, err)
	}

	products, err := c.breaker.Execute(func() ([]domain.Product, error) {
		return c.search(ctx, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn().Str("query", query).Msg("catalog circuit open")
		}
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	c.logger.Debug().Str("query", query).Int("count", len(products)).Msg("products found")
	return products, nil
}

// search performs one HTTP request
func (c *Client) search(ctx context.Context, query string) ([]domain.Product, error) {
	reqURL := c.searchURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("catalog API error")
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var raw []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogUnavailable, err)
	}

	return MapProducts(raw), nil
}

func (c *Client) searchURL(query string) string {
	params := url.Values{}
	params.Set("search", query)
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("status", "publish")
	if c.key != "" {
		params.Set("consumer_key", c.key)
		params.Set("consumer_secret", c.secret)
	}
	return fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, params.Encode())
}
