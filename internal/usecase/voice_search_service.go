package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

// Search outcomes reported to the recorder
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
)

// SearchRecorder receives one observation per voice search
type SearchRecorder interface {
	ObserveSearch(outcome string, results int, duration time.Duration)
}

// VoiceSearchConfig holds configuration for the voice search service
type VoiceSearchConfig struct {
	Timeout time.Duration
	Ranking RankingConfig

	// Recorder is optional
	Recorder SearchRecorder
}

// VoiceSearchService runs the voice search pipeline:
// extract keywords -> build query -> search catalog -> filter by price -> rank
type VoiceSearchService struct {
	catalog   domain.CatalogClient
	extractor *KeywordExtractor
	builder   *QueryBuilder
	ranker    *RankingService
	responder *ResponseGenerator
	recorder  SearchRecorder
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewVoiceSearchService creates a voice search service with dependencies.
// A nil lexicon uses the built-in tables.
func NewVoiceSearchService(
	catalog domain.CatalogClient,
	lex *lexicon.Lexicon,
	config VoiceSearchConfig,
	logger *zerolog.Logger,
) *VoiceSearchService {
	if lex == nil {
		lex = lexicon.Default()
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &VoiceSearchService{
		catalog:   catalog,
		extractor: NewKeywordExtractor(lex, logger),
		builder:   NewQueryBuilder(logger),
		ranker:    NewRankingService(config.Ranking, logger),
		responder: NewResponseGenerator(lex),
		recorder:  config.Recorder,
		timeout:   timeout,
		logger:    loggerOrNop(logger),
	}
}

// Analyze extracts keywords and builds the search query without calling the catalog
func (s *VoiceSearchService) Analyze(transcript string) (domain.KeywordRecord, string) {
	keywords := s.extractor.Extract(transcript)
	return keywords, s.builder.Build(keywords)
}

// Search runs the full pipeline for one transcript.
// Zero catalog results is a valid outcome; a failed or timed out catalog call
// returns domain.ErrCatalogUnavailable.
func (s *VoiceSearchService) Search(ctx context.Context, transcript string) (*domain.SearchResult, error) {
	start := time.Now()
	keywords, query := s.Analyze(transcript)

	result := &domain.SearchResult{
		Products:    []domain.RankedProduct{},
		Keywords:    keywords,
		SearchQuery: query,
	}

	// an empty search would list the whole catalog
	if strings.TrimSpace(query) == "" {
		s.observe(OutcomeEmpty, 0, start)
		return result, nil
	}

	products, err := s.searchCatalog(ctx, query)
	if err != nil {
		s.observe(OutcomeUnavailable, 0, start)
		s.logger.Warn().Err(err).Str("query", query).Msg("catalog search failed")
		return nil, err
	}

	fetched := len(products)
	if keywords.PriceRange != "" {
		products = s.ranker.FilterByPrice(products, keywords.PriceRange)
	}
	result.Products = s.ranker.Rank(products, keywords)

	outcome := OutcomeOK
	if len(result.Products) == 0 {
		outcome = OutcomeEmpty
	}
	s.observe(outcome, len(result.Products), start)

	s.logger.Info().
		Str("query", query).
		Str("product_type", string(keywords.ProductType)).
		Str("skin_type", string(keywords.SkinType)).
		Str("concern", string(keywords.Concern)).
		Str("price_range", string(keywords.PriceRange)).
		Int("fetched", fetched).
		Int("returned", len(result.Products)).
		Dur("duration", time.Since(start)).
		Msg("voice search completed")

	return result, nil
}

// Respond builds the spoken reply for a search result
func (s *VoiceSearchService) Respond(
	products []domain.RankedProduct,
	keywords domain.KeywordRecord,
	searchQuery string,
	userName string,
) string {
	return s.responder.Generate(products, keywords, searchQuery, userName)
}

// Handle runs a search for the session and always returns a reply to speak.
// On catalog failure the reply is an apology and the error is returned alongside it.
func (s *VoiceSearchService) Handle(
	ctx context.Context,
	session *domain.VoiceSession,
	transcript string,
) (*domain.SearchResult, string, error) {
	if session == nil {
		session = &domain.VoiceSession{}
	}

	result, err := s.Search(ctx, transcript)
	if err != nil {
		return nil, s.responder.GenerateUnavailable(session.UserName), err
	}

	if session.LastResult != nil {
		s.logger.Debug().
			Str("previous_query", session.LastResult.SearchQuery).
			Str("query", result.SearchQuery).
			Msg("follow-up search")
	}
	session.LastResult = result

	reply := s.responder.Generate(result.Products, result.Keywords, result.SearchQuery, session.UserName)
	return result, reply, nil
}

// searchCatalog calls the catalog under the configured timeout
func (s *VoiceSearchService) searchCatalog(ctx context.Context, query string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	products, err := s.catalog.SearchProducts(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return products, nil
}

func (s *VoiceSearchService) observe(outcome string, results int, start time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveSearch(outcome, results, time.Since(start))
	}
}
