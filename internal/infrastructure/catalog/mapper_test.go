package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/souqly/voicesearch/internal/domain"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "  كريم   مرطب ", "كريم مرطب"},
		{"paragraphs", "<p>للبشرة الجافة</p><p>30ml</p>", "للبشرة الجافة 30ml"},
		{"entities", "Gel &amp; Tonique", "Gel & Tonique"},
		{"line breaks", "a<br>b<br/>c", "a b c"},
		{"inline tags", "<strong>Hydra</strong>tant", "Hydratant"},
		{"script dropped", "<p>ok</p><script>alert(1)</script>", "ok"},
		{"list", "<ul><li>one</li><li>two</li></ul>", "one two"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

func TestMapProduct(t *testing.T) {
	t.Run("uses short description when description is empty", func(t *testing.T) {
		p := MapProduct(domain.Product{ShortDescription: "<p>Gel doux</p>"})
		assert.Equal(t, "Gel doux", p.Description)
		assert.Equal(t, "Gel doux", p.ShortDescription)
	})

	t.Run("keeps sale price", func(t *testing.T) {
		p := MapProduct(domain.Product{Price: domain.NewNumber(80), RegularPrice: domain.NewNumber(100)})
		assert.Equal(t, 80.0, p.Price.Value)
	})

	t.Run("falls back to regular price", func(t *testing.T) {
		p := MapProduct(domain.Product{RegularPrice: domain.NewNumber(100)})
		assert.Equal(t, domain.NewNumber(100), p.Price)
	})

	t.Run("unknown price stays unknown", func(t *testing.T) {
		p := MapProduct(domain.Product{Name: "x"})
		assert.False(t, p.Price.Valid)
	})

	t.Run("cleans tag names", func(t *testing.T) {
		p := MapProduct(domain.Product{Tags: []domain.ProductTag{{Name: "Anti&amp;Acne"}}})
		assert.Equal(t, "Anti&Acne", p.Tags[0].Name)
	})
}

func TestMapProducts(t *testing.T) {
	assert.Empty(t, MapProducts(nil))
	assert.Len(t, MapProducts([]domain.Product{{ID: 1}, {ID: 2}}), 2)
}
