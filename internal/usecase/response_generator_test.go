package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

func rankedProducts(n int) []domain.RankedProduct {
	out := make([]domain.RankedProduct, n)
	for i := range out {
		out[i] = domain.RankedProduct{Product: domain.Product{ID: i + 1, Name: fmt.Sprintf("P%d", i+1)}}
	}
	return out
}

func TestResponseGenerator_Opening(t *testing.T) {
	g := NewResponseGenerator(nil)

	tests := []struct {
		name     string
		text     string
		userName string
		want     string
	}{
		{"greeting wins over question", "السلام عليكم واش عندكم سيروم؟", "Sara", openingGreeting},
		{"question word", "واش عندكم سيروم", "Sara", openingQuestion},
		{"question mark", "sérum?", "", openingQuestion},
		{"gratitude", "شكرا بزاف", "", openingGratitude},
		{"personalized", "بغيت سيروم", "Sara", "مرحبا Sara!"},
		{"nothing", "بغيت سيروم", "", ""},
		{"trigger inside a word is ignored", "سهلة الاستعمال", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.opening(lexicon.Normalize(tt.text), tokenize(tt.text), tt.userName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponseGenerator_PriceQuery(t *testing.T) {
	g := NewResponseGenerator(nil)
	keywords := domain.KeywordRecord{Intent: "price", OriginalText: "بشحال سيروم فيتامين سي"}

	t.Run("single product states name and price", func(t *testing.T) {
		products := []domain.RankedProduct{{Product: domain.Product{Name: "Serum C", Price: domain.NewNumber(120)}}}
		got := g.Generate(products, keywords, "سيروم فيتامين سي", "")
		assert.Equal(t, "Serum C ثمنه 120 درهم.", got)
	})

	t.Run("fractional price", func(t *testing.T) {
		products := []domain.RankedProduct{{Product: domain.Product{Name: "Gel", Price: domain.NewNumber(89.5)}}}
		got := g.Generate(products, keywords, "gel", "")
		assert.Equal(t, "Gel ثمنه 89.5 درهم.", got)
	})

	t.Run("unknown price", func(t *testing.T) {
		products := []domain.RankedProduct{{Product: domain.Product{Name: "Gel"}}}
		got := g.Generate(products, keywords, "gel", "")
		assert.Equal(t, fmt.Sprintf(mainPriceUnknown, "Gel"), got)
	})

	t.Run("several products acknowledge the query", func(t *testing.T) {
		got := g.Generate(rankedProducts(2), keywords, "سيروم", "")
		assert.Equal(t, fmt.Sprintf(mainQueryCount, 2, "سيروم"), got)
	})
}

func TestResponseGenerator_MainResult(t *testing.T) {
	g := NewResponseGenerator(nil)
	tagged := domain.KeywordRecord{ProductType: "serum", SkinType: "oily"}

	tests := []struct {
		name        string
		count       int
		keywords    domain.KeywordRecord
		searchQuery string
		want        string
	}{
		{"query with results", 4, domain.KeywordRecord{}, "غسول", fmt.Sprintf(mainQueryCount, 4, "غسول")},
		{"query without results", 0, domain.KeywordRecord{}, "غسول", fmt.Sprintf(mainQueryNone, "غسول")},
		{"no tags and no query", 0, domain.KeywordRecord{}, "", mainNone},
		{"band zero", 0, tagged, "", "للأسف ما لقيت حتى سيروم للبشرة الدهنية دابا."},
		{"band one", 1, tagged, "", "لقيت ليك سيروم للبشرة الدهنية واحد."},
		{"band few", 5, tagged, "", "لقيت ليك 5 ديال سيروم للبشرة الدهنية."},
		{"band many", 6, tagged, "", "عندنا بزاف ديال الاختيارات: 6 ديال سيروم للبشرة الدهنية."},
		{"band without product type", 2, domain.KeywordRecord{Concern: "acne"}, "", "لقيت ليك 2 ديال منتج."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.mainResult(rankedProducts(tt.count), tt.keywords, tt.searchQuery, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponseGenerator_Advice(t *testing.T) {
	g := NewResponseGenerator(nil)

	t.Run("skin type then concern", func(t *testing.T) {
		keywords := domain.KeywordRecord{SkinType: "dry", Concern: "acne", OriginalText: "بغيت كريم"}
		got := g.Generate(rankedProducts(2), keywords, "كريم", "")

		want := strings.Join([]string{
			fmt.Sprintf(mainQueryCount, 2, "كريم"),
			skinTypeAdvice["dry"],
			concernAdvice["acne"],
		}, " ")
		assert.Equal(t, want, got)
	})

	t.Run("no advice without products", func(t *testing.T) {
		keywords := domain.KeywordRecord{SkinType: "dry", Concern: "acne", OriginalText: "بغيت كريم"}
		got := g.Generate(nil, keywords, "كريم", "")

		assert.Equal(t, fmt.Sprintf(mainQueryNone, "كريم"), got)
	})

	t.Run("caps the reply at three parts", func(t *testing.T) {
		keywords := domain.KeywordRecord{
			ProductType:  "serum",
			SkinType:     "oily",
			Concern:      "acne",
			OriginalText: "السلام، بغيت سيروم لحب الشباب للبشرة الدهنية",
		}
		got := g.Generate(rankedProducts(3), keywords, "سيروم", "Sara")

		want := strings.Join([]string{
			openingGreeting,
			fmt.Sprintf(mainQueryCount, 3, "سيروم"),
			skinTypeAdvice["oily"],
		}, " ")
		assert.Equal(t, want, got)
		assert.NotContains(t, got, concernAdvice["acne"])
	})

	t.Run("tags without advice templates", func(t *testing.T) {
		keywords := domain.KeywordRecord{SkinType: "unknown", OriginalText: "x"}
		got := g.Generate(rankedProducts(1), keywords, "x", "")

		assert.Equal(t, fmt.Sprintf(mainQueryCount, 1, "x"), got)
	})
}

func TestResponseGenerator_Deterministic(t *testing.T) {
	g := NewResponseGenerator(nil)
	keywords := domain.KeywordRecord{SkinType: "dry", OriginalText: "السلام بغيت كريم"}

	first := g.Generate(rankedProducts(2), keywords, "كريم", "Sara")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.Generate(rankedProducts(2), keywords, "كريم", "Sara"))
	}
}

func TestResponseGenerator_GenerateUnavailable(t *testing.T) {
	g := NewResponseGenerator(nil)

	assert.Equal(t, unavailable, g.GenerateUnavailable(""))
	assert.Equal(t, unavailable, g.GenerateUnavailable("  "))
	assert.Equal(t, fmt.Sprintf(unavailableNamed, "Sara"), g.GenerateUnavailable("Sara"))
}

func TestJoinParts(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"a", "", "b"}, "a b"},
		{[]string{"", "", ""}, ""},
		{[]string{"a", "b", "c", "d"}, "a b c"},
		{[]string{"", "a", "b", "", "c", "d"}, "a b c"},
	}

	for _, tt := range tests {
		if got := joinParts(tt.parts, maxReplyParts); got != tt.want {
			t.Errorf("joinParts(%q) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}
