package usecase

import (
	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

// KeywordExtractor turns a raw utterance into a structured keyword record
type KeywordExtractor struct {
	lexicon *lexicon.Lexicon
	logger  zerolog.Logger
}

// NewKeywordExtractor creates an extractor over the given lexicon.
// A nil lexicon uses the built-in tables.
func NewKeywordExtractor(lex *lexicon.Lexicon, logger *zerolog.Logger) *KeywordExtractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &KeywordExtractor{
		lexicon: lex,
		logger:  loggerOrNop(logger),
	}
}

// Extract matches the normalized text against every lexicon category.
// Empty input yields a record with no tags and an empty OriginalText.
func (e *KeywordExtractor) Extract(text string) domain.KeywordRecord {
	record := domain.KeywordRecord{OriginalText: text}

	normalized := lexicon.Normalize(text)
	if normalized == "" {
		return record
	}

	for _, c := range lexicon.Categories {
		tag, ok := e.lexicon.Match(c, normalized)
		if !ok {
			continue
		}
		switch c {
		case lexicon.ProductType:
			record.ProductType = tag
		case lexicon.SkinType:
			record.SkinType = tag
		case lexicon.Concern:
			record.Concern = tag
		case lexicon.PriceRange:
			record.PriceRange = tag
		case lexicon.Ingredient:
			record.Ingredient = tag
		case lexicon.Intent:
			record.Intent = tag
		}
	}

	e.logger.Debug().
		Str("input", text).
		Str("product_type", string(record.ProductType)).
		Str("skin_type", string(record.SkinType)).
		Str("concern", string(record.Concern)).
		Str("price_range", string(record.PriceRange)).
		Str("ingredient", string(record.Ingredient)).
		Str("intent", string(record.Intent)).
		Msg("keywords extracted")

	return record
}

// loggerOrNop dereferences logger, falling back to a disabled logger
func loggerOrNop(logger *zerolog.Logger) zerolog.Logger {
	if logger == nil {
		return zerolog.Nop()
	}
	return *logger
}
