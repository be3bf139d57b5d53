package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Breaker   BreakerConfig   `mapstructure:"breaker"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Search    SearchConfig    `mapstructure:"search"`
	Ranking   RankingConfig   `mapstructure:"ranking"`
	Lexicon   LexiconConfig   `mapstructure:"lexicon"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CatalogConfig holds the store REST API configuration
type CatalogConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConsumerKey    string        `mapstructure:"consumer_key"`
	ConsumerSecret string        `mapstructure:"consumer_secret"`
	PerPage        int           `mapstructure:"per_page"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// BreakerConfig holds the catalog circuit breaker configuration
type BreakerConfig struct {
	MaxRequests  uint32        `mapstructure:"max_requests"`
	Interval     time.Duration `mapstructure:"interval"`
	OpenTimeout  time.Duration `mapstructure:"open_timeout"`
	MinRequests  uint32        `mapstructure:"min_requests"`
	FailureRatio float64       `mapstructure:"failure_ratio"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type            string        `mapstructure:"type"` // "memory", "redis" or "none"
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	RedisPrefix     string        `mapstructure:"redis_prefix"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP        int     `mapstructure:"per_ip"` // requests per minute per client
	Burst        int     `mapstructure:"burst"`
	Catalog      float64 `mapstructure:"catalog"` // outbound requests per second
	CatalogBurst int     `mapstructure:"catalog_burst"`
}

// SearchConfig holds voice search pipeline configuration
type SearchConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// RankingConfig holds scoring weights and price band thresholds
type RankingConfig struct {
	ProductTypeWeight float64 `mapstructure:"product_type_weight"`
	ConcernWeight     float64 `mapstructure:"concern_weight"`
	SkinTypeWeight    float64 `mapstructure:"skin_type_weight"`
	SalesDivisor      float64 `mapstructure:"sales_divisor"`
	SalesCap          float64 `mapstructure:"sales_cap"`
	LowPriceMax       float64 `mapstructure:"low_price_max"`
	HighPriceMin      float64 `mapstructure:"high_price_min"`
}

// LexiconConfig points at an optional lexicon extension file
type LexiconConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from the .env file, environment variables and config files
func Load() (*Config, error) {
	config, err := load()
	if err != nil {
		return nil, err
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadOffline loads configuration for commands that never call the catalog.
// Catalog credentials are not required.
func LoadOffline() (*Config, error) {
	config, err := load()
	if err != nil {
		return nil, err
	}

	if err := validateLocal(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/souqly/")

	// Environment variable settings: SOUQLY_CATALOG_BASE_URL -> catalog.base_url
	v.SetEnvPrefix("SOUQLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can bind it during Unmarshal
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory if present.
// Variables already set in the environment are not overridden.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "capacitor://localhost"})
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Catalog defaults
	v.SetDefault("catalog.base_url", "")
	v.SetDefault("catalog.consumer_key", "")
	v.SetDefault("catalog.consumer_secret", "")
	v.SetDefault("catalog.per_page", 20)
	v.SetDefault("catalog.timeout", "10s")

	// Circuit breaker defaults
	v.SetDefault("breaker.max_requests", 1)
	v.SetDefault("breaker.interval", "60s")
	v.SetDefault("breaker.open_timeout", "30s")
	v.SetDefault("breaker.min_requests", 5)
	v.SetDefault("breaker.failure_ratio", 0.5)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "15m")
	v.SetDefault("cache.cleanup_interval", "10m")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.redis_prefix", "souqly:")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("ratelimit.catalog", 5.0)
	v.SetDefault("ratelimit.catalog_burst", 10)

	// Search defaults
	v.SetDefault("search.timeout", "8s")

	// Ranking defaults
	v.SetDefault("ranking.product_type_weight", 10.0)
	v.SetDefault("ranking.concern_weight", 5.0)
	v.SetDefault("ranking.skin_type_weight", 3.0)
	v.SetDefault("ranking.sales_divisor", 10.0)
	v.SetDefault("ranking.sales_cap", 5.0)
	v.SetDefault("ranking.low_price_max", 10.0)
	v.SetDefault("ranking.high_price_min", 25.0)

	// Lexicon defaults
	v.SetDefault("lexicon.file", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set SOUQLY_CATALOG_BASE_URL)")
	}

	if config.Catalog.ConsumerKey == "" {
		return fmt.Errorf("catalog consumer key is required (set SOUQLY_CATALOG_CONSUMER_KEY)")
	}

	return validateLocal(config)
}

// validateLocal checks everything except catalog credentials
func validateLocal(config *Config) error {
	switch config.Cache.Type {
	case "memory", "none":
	case "redis":
		if config.Cache.RedisAddr == "" {
			return fmt.Errorf("Redis address is required when cache type is 'redis'")
		}
	default:
		return fmt.Errorf("cache type must be 'memory', 'redis' or 'none', got: %s", config.Cache.Type)
	}

	if config.Ranking.LowPriceMax > config.Ranking.HighPriceMin {
		return fmt.Errorf("ranking low_price_max (%v) must not exceed high_price_min (%v)",
			config.Ranking.LowPriceMax, config.Ranking.HighPriceMin)
	}

	switch config.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("log format must be 'json' or 'console', got: %s", config.Log.Format)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
