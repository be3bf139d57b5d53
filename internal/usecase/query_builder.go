package usecase

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

const (
	// minStemRemainder is how many characters must remain after removing an
	// attached prefix; shorter remainders keep the prefix
	minStemRemainder = 2

	// maxQueryRunes keeps catalog queries short
	maxQueryRunes = 100

	tokenPunctuation = "؟?!.,،؛;:\"'«»()-"
)

// queryStopWords is conversational filler in Standard Arabic and Darija.
// Multi-word entries are matched as whole token sequences.
var queryStopWords = []string{
	// Standard Arabic
	"أريد", "أرغب في", "أبحث عن", "أبحث", "ابحث عن", "ابحث",
	"من فضلك", "لو سمحت", "أعطني", "هل يوجد", "هل عندكم", "هل لديكم",
	"أحتاج إلى", "أحتاج", "لدي", "عن", "على", "في", "من", "إلى", "مع",
	"هل", "ما", "هو", "هي", "شيء", "بعض", "منتج", "منتجات", "و",

	// Darija
	"بغيت", "بغيت شي", "عافاك", "الله يخليك", "واش", "عندكم", "كاين شي", "كاين",
	"شي", "واحد", "ديال", "فين نلقى", "فين", "نقلب على", "قلب لي", "قلب على",
	"خاصني", "خصني", "محتاج", "محتاجة", "ليا", "لي", "بزاف", "شنو", "شحال",
	"بشحال", "بكم", "راه", "هاد", "هادي", "ممكن", "عطيني", "تعطيني", "نشري", "نشوف",
	"فيه", "فيها",

	// greetings and thanks
	"السلام عليكم", "السلام", "سلام", "عليكم", "مرحبا", "أهلا", "شكرا", "الله يجازيك",

	// French fillers that show up in mixed utterances
	"je veux", "je cherche", "s'il vous plait", "svp", "un", "une", "pour", "la", "le", "les", "de",
	"bonjour", "salam", "merci",
}

// queryPrefixes are attached definite-article forms, longest first
var queryPrefixes = []string{"وال", "بال", "كال", "فال", "لل", "ال"}

// QueryBuilder turns a keyword record into the catalog search string
type QueryBuilder struct {
	stopPhrases [][]string
	prefixes    []string
	logger      zerolog.Logger
}

// NewQueryBuilder creates a query builder with the built-in stop words
func NewQueryBuilder(logger *zerolog.Logger) *QueryBuilder {
	phrases := triggerPhrases(queryStopWords)
	// longest phrases first so "بغيت شي" wins over "بغيت"
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i]) > len(phrases[j])
	})

	return &QueryBuilder{
		stopPhrases: phrases,
		prefixes:    lexicon.NormalizeAll(queryPrefixes),
		logger:      loggerOrNop(logger),
	}
}

// Build strips filler and attached prefixes from the original text. When
// nothing survives it falls back to the product type and concern tags, and
// finally to the original text verbatim. It never fails.
func (b *QueryBuilder) Build(keywords domain.KeywordRecord) string {
	cleaned := b.clean(keywords.OriginalText)

	query := cleaned
	if query == "" {
		var parts []string
		if keywords.ProductType != "" {
			parts = append(parts, string(keywords.ProductType))
		}
		if keywords.Concern != "" {
			parts = append(parts, string(keywords.Concern))
		}
		query = strings.Join(parts, " ")
	}
	if query == "" {
		query = keywords.OriginalText
	}

	b.logger.Debug().Str("input", keywords.OriginalText).Str("query", query).Msg("query built")

	return query
}

// clean removes stop phrases and prefixes and normalizes whitespace
func (b *QueryBuilder) clean(text string) string {
	tokens := b.removeStopPhrases(tokenize(text))

	for i, token := range tokens {
		tokens[i] = b.stripPrefix(token)
	}

	return truncateQuery(strings.Join(tokens, " "))
}

// tokenize normalizes text and splits it into punctuation-free tokens
func tokenize(text string) []string {
	fields := strings.Fields(lexicon.Normalize(text))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.Trim(f, tokenPunctuation); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// removeStopPhrases drops whole-token stop phrases, never parts of a token
func (b *QueryBuilder) removeStopPhrases(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if n := b.matchStopPhrase(tokens[i:]); n > 0 {
			i += n
			continue
		}
		kept = append(kept, tokens[i])
		i++
	}
	return kept
}

// matchStopPhrase returns the token length of the stop phrase at the start of tokens, or 0
func (b *QueryBuilder) matchStopPhrase(tokens []string) int {
	for _, phrase := range b.stopPhrases {
		if hasPhraseAt(tokens, phrase) {
			return len(phrase)
		}
	}
	return 0
}

// stripPrefix removes the first matching attached prefix when enough of the word remains
func (b *QueryBuilder) stripPrefix(token string) string {
	for _, p := range b.prefixes {
		if !strings.HasPrefix(token, p) {
			continue
		}
		rest := token[len(p):]
		if utf8.RuneCountInString(rest) > minStemRemainder {
			return rest
		}
		return token
	}
	return token
}

// truncateQuery caps the query length, cutting at a word boundary when possible
func truncateQuery(query string) string {
	r := []rune(query)
	if len(r) <= maxQueryRunes {
		return query
	}
	cut := string(r[:maxQueryRunes])
	if lastSpace := strings.LastIndex(cut, " "); lastSpace > len(cut)/2 {
		cut = cut[:lastSpace]
	}
	return strings.TrimSpace(cut)
}
