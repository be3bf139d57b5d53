package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a catalog numeric field that may arrive as a JSON number, a numeric
// string ("12.50") or be missing entirely. Valid is false when the value is unknown.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a known Number
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Or returns the value, or fallback when unknown
func (n Number) Or(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}
	return n.Value
}

// MarshalJSON encodes unknown numbers as null
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		return nil
	}

	var s string
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = raw
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		// Malformed values are treated as unknown rather than failing the whole payload
		return nil
	}
	*n = NewNumber(v)
	return nil
}

// ProductTag is a catalog tag attached to a product
type ProductTag struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// ProductAttribute is a catalog attribute with its options
type ProductAttribute struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// ProductImage is a product picture
type ProductImage struct {
	Src string `json:"src"`
}

// Product represents a catalog product returned by the store search
type Product struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	ShortDescription string             `json:"short_description,omitempty"`
	Permalink        string             `json:"permalink,omitempty"`
	Price            Number             `json:"price"`
	RegularPrice     Number             `json:"regular_price"`
	Tags             []ProductTag       `json:"tags,omitempty"`
	Attributes       []ProductAttribute `json:"attributes,omitempty"`
	AverageRating    Number             `json:"average_rating"`
	TotalSales       Number             `json:"total_sales"`
	Images           []ProductImage     `json:"images,omitempty"`
}

// RankedProduct is a catalog product augmented with its relevance score
type RankedProduct struct {
	Product
	RelevanceScore float64 `json:"relevanceScore"`
}

// SearchResult is the outcome of one voice search
type SearchResult struct {
	Products    []RankedProduct `json:"products"`
	Keywords    KeywordRecord   `json:"keywords"`
	SearchQuery string          `json:"searchQuery"`
}

// VoiceSession carries the caller's per-conversation state into the pipeline
type VoiceSession struct {
	UserName   string
	LastResult *SearchResult
}
