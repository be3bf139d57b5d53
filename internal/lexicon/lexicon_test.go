package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims and lowercases", "  Vitamin C  ", "vitamin c"},
		{"collapses whitespace", "كريم   مرطب", "كريم مرطب"},
		{"folds hamza on alef", "أريد", "اريد"},
		{"removes harakat", "كَرِيم", "كريم"},
		{"removes tatweel", "سيـــروم", "سيروم"},
		{"folds latin accents", "Acné", "acne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDefaultTagsAreLabelled(t *testing.T) {
	l := Default()
	for _, c := range []Category{ProductType, SkinType, Concern, PriceRange, Ingredient} {
		for _, entry := range l.Entries(c) {
			if c == PriceRange {
				continue
			}
			label := l.Label(domain.Tag(entry.Tag))
			assert.NotEqual(t, entry.Tag, label, "tag %q in %s has no label", entry.Tag, c)
		}
	}
}

func TestDefaultPatternsAreNormalized(t *testing.T) {
	l := Default()
	for _, c := range Categories {
		for _, entry := range l.Entries(c) {
			assert.Equal(t, Normalize(entry.Pattern), entry.Pattern)
		}
	}
}

func TestMatch(t *testing.T) {
	l := Default()

	tests := []struct {
		name     string
		category Category
		text     string
		want     domain.Tag
	}{
		{"serum", ProductType, "اريد سيروم للبشرة الدهنية", "serum"},
		{"oily skin", SkinType, "اريد سيروم للبشرة الدهنية", "oily"},
		{"moisturizer wins over cream", ProductType, "بغيت كريم مرطب", "moisturizer"},
		{"lip balm wins over moisturizer", ProductType, "بغيت مرطب الشفاه", "lip balm"},
		{"sunscreen wins over cream", ProductType, "كريم واقي من الشمس", "sunscreen"},
		{"generic cream", ProductType, "كريم للوجه", "cream"},
		{"oily skin word is not an oil product", ProductType, "كريم للبشرة الزيتية", "cream"},
		{"oily skin in english is not an oil product", ProductType, "cream for oily skin", "cream"},
		{"oily skin still matches skin type", SkinType, "كريم للبشرة الزيتية", "oily"},
		{"face oil", ProductType, "بغيت زيت الوجه", "oil"},
		{"negated expensive is low", PriceRange, "بغيت شي حاجة ماشي غالي", "low"},
		{"expensive", PriceRange, "بغيت شي حاجة غالية", "high"},
		{"latin ingredient", Ingredient, Normalize("Sérum Vitamin C"), "vitamin c"},
		{"no match", Concern, "مرحبا", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Match(tt.category, tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != "", ok)
		})
	}
}

func TestMatchEmptyText(t *testing.T) {
	got, ok := Default().Match(ProductType, "")
	assert.False(t, ok)
	assert.Equal(t, domain.Tag(""), got)
}

func TestExtend(t *testing.T) {
	t.Run("extra entries are checked first", func(t *testing.T) {
		l, err := Default().Extend(map[Category][]Entry{
			ProductType: {{Pattern: "كريم", Tag: "moisturizer"}},
		})
		require.NoError(t, err)

		got, _ := l.Match(ProductType, "كريم للوجه")
		assert.Equal(t, domain.Tag("moisturizer"), got)
	})

	t.Run("rejects unknown tags", func(t *testing.T) {
		_, err := Default().Extend(map[Category][]Entry{
			SkinType: {{Pattern: "غريبة", Tag: "purple"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "purple")
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := Default().Extend(map[Category][]Entry{
			Category("brand"): {{Pattern: "x", Tag: "y"}},
		})
		require.Error(t, err)
	})

	t.Run("rejects empty patterns", func(t *testing.T) {
		_, err := Default().Extend(map[Category][]Entry{
			ProductType: {{Pattern: "  ", Tag: "serum"}},
		})
		require.Error(t, err)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		base := Default()
		before := len(base.Entries(ProductType))
		_, err := base.Extend(map[Category][]Entry{
			ProductType: {{Pattern: "سيرم جديد", Tag: "serum"}},
		})
		require.NoError(t, err)
		assert.Len(t, base.Entries(ProductType), before)
	})
}

func TestDecode(t *testing.T) {
	doc := `
productType:
  - pattern: "Crème Visage"
    tag: moisturizer
concern:
  - pattern: "الندوب"
    tag: acne
`
	l, err := Decode(Default(), strings.NewReader(doc))
	require.NoError(t, err)

	got, ok := l.Match(ProductType, Normalize("Crème visage bio"))
	require.True(t, ok)
	assert.Equal(t, domain.Tag("moisturizer"), got)

	got, ok = l.Match(Concern, "عندي الندوب")
	require.True(t, ok)
	assert.Equal(t, domain.Tag("acne"), got)
}

func TestDecodeEmptyDocument(t *testing.T) {
	base := Default()
	l, err := Decode(base, strings.NewReader(""))
	require.NoError(t, err)
	assert.Same(t, base, l)
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		l, err := LoadFile("")
		require.NoError(t, err)
		assert.NotEmpty(t, l.Entries(ProductType))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid tag in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("skinType:\n  - pattern: x\n    tag: nope\n"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLoadFile_ExampleFile(t *testing.T) {
	l, err := LoadFile(filepath.Join("..", "..", "config", "lexicon.example.yaml"))
	require.NoError(t, err)

	tag, ok := l.Match(ProductType, Normalize("عندكم كريمة الليل"))
	require.True(t, ok)
	assert.Equal(t, domain.Tag("moisturizer"), tag)

	tag, ok = l.Match(SkinType, Normalize("بشرة كتلمع بزاف"))
	require.True(t, ok)
	assert.Equal(t, domain.Tag("oily"), tag)
}
