package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

// Default scoring weights and price thresholds
const (
	defaultProductTypeWeight = 10.0 // productType tag found in the product name
	defaultConcernWeight     = 5.0  // concern tag found in the name or a product tag
	defaultSkinTypeWeight    = 3.0  // skinType tag found in the description
	defaultSalesDivisor      = 10.0
	defaultSalesCap          = 5.0
	defaultLowPriceMax       = 10.0
	defaultHighPriceMin      = 25.0
)

// RankingConfig holds the scoring weights and price band thresholds.
// Zero or negative values fall back to the defaults.
type RankingConfig struct {
	ProductTypeWeight float64
	ConcernWeight     float64
	SkinTypeWeight    float64
	SalesDivisor      float64
	SalesCap          float64
	LowPriceMax       float64
	HighPriceMin      float64
}

// DefaultRankingConfig returns the built-in weights
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		ProductTypeWeight: defaultProductTypeWeight,
		ConcernWeight:     defaultConcernWeight,
		SkinTypeWeight:    defaultSkinTypeWeight,
		SalesDivisor:      defaultSalesDivisor,
		SalesCap:          defaultSalesCap,
		LowPriceMax:       defaultLowPriceMax,
		HighPriceMin:      defaultHighPriceMin,
	}
}

// RankingService filters catalog results by price band and orders them by relevance
type RankingService struct {
	config RankingConfig
	logger zerolog.Logger
}

// NewRankingService creates a ranking service with the given configuration
func NewRankingService(config RankingConfig, logger *zerolog.Logger) *RankingService {
	defaults := DefaultRankingConfig()
	orDefault := func(v, def float64) float64 {
		if v <= 0 {
			return def
		}
		return v
	}

	cfg := RankingConfig{
		ProductTypeWeight: orDefault(config.ProductTypeWeight, defaults.ProductTypeWeight),
		ConcernWeight:     orDefault(config.ConcernWeight, defaults.ConcernWeight),
		SkinTypeWeight:    orDefault(config.SkinTypeWeight, defaults.SkinTypeWeight),
		SalesDivisor:      orDefault(config.SalesDivisor, defaults.SalesDivisor),
		SalesCap:          orDefault(config.SalesCap, defaults.SalesCap),
		LowPriceMax:       orDefault(config.LowPriceMax, defaults.LowPriceMax),
		HighPriceMin:      orDefault(config.HighPriceMin, defaults.HighPriceMin),
	}
	if cfg.HighPriceMin < cfg.LowPriceMax {
		cfg.LowPriceMax, cfg.HighPriceMin = defaults.LowPriceMax, defaults.HighPriceMin
	}

	return &RankingService{
		config: cfg,
		logger: loggerOrNop(logger),
	}
}

// Config returns the effective configuration
func (s *RankingService) Config() RankingConfig {
	return s.config
}

// FilterByPrice keeps products inside the requested price band.
// An empty or unknown band returns the input unchanged; products with an
// unknown price are always kept.
func (s *RankingService) FilterByPrice(products []domain.Product, priceRange domain.Tag) []domain.Product {
	var inBand func(float64) bool
	switch priceRange {
	case domain.PriceLow:
		inBand = func(p float64) bool { return p < s.config.LowPriceMax }
	case domain.PriceMedium:
		inBand = func(p float64) bool { return p >= s.config.LowPriceMax && p <= s.config.HighPriceMin }
	case domain.PriceHigh:
		inBand = func(p float64) bool { return p > s.config.HighPriceMin }
	default:
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.Price.Valid || inBand(p.Price.Value) {
			filtered = append(filtered, p)
		}
	}

	s.logger.Debug().
		Str("price_range", string(priceRange)).
		Int("before", len(products)).
		Int("after", len(filtered)).
		Msg("price filter applied")

	return filtered
}

// Rank scores every product and sorts by descending score.
// Products with equal scores keep their catalog order.
func (s *RankingService) Rank(products []domain.Product, keywords domain.KeywordRecord) []domain.RankedProduct {
	ranked := make([]domain.RankedProduct, len(products))
	for i, p := range products {
		ranked[i] = domain.RankedProduct{
			Product:        p,
			RelevanceScore: s.Score(p, keywords),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}

// Score computes the additive relevance of one product for the keywords
func (s *RankingService) Score(p domain.Product, keywords domain.KeywordRecord) float64 {
	var score float64

	name := lexicon.Normalize(p.Name)

	if containsTag(name, keywords.ProductType) {
		score += s.config.ProductTypeWeight
	}

	if keywords.Concern != "" {
		matched := containsTag(name, keywords.Concern)
		for _, tag := range p.Tags {
			if matched {
				break
			}
			matched = containsTag(lexicon.Normalize(tag.Name), keywords.Concern)
		}
		if matched {
			score += s.config.ConcernWeight
		}
	}

	if containsTag(lexicon.Normalize(p.Description), keywords.SkinType) {
		score += s.config.SkinTypeWeight
	}

	if rating := p.AverageRating.Or(0); rating > 0 {
		score += rating
	}

	if sales := p.TotalSales.Or(0); sales > 0 {
		score += math.Min(sales/s.config.SalesDivisor, s.config.SalesCap)
	}

	return score
}

// containsTag reports whether the normalized text contains the tag text
func containsTag(normalized string, tag domain.Tag) bool {
	if tag == "" || normalized == "" {
		return false
	}
	return strings.Contains(normalized, lexicon.Normalize(string(tag)))
}
