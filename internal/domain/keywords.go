package domain

import "encoding/json"

// Tag is a canonical concept identifier such as "serum" or "oily".
// The empty Tag means no match and is encoded as JSON null.
type Tag string

// MarshalJSON encodes the empty tag as null
func (t Tag) MarshalJSON() ([]byte, error) {
	if t == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts a string or null
func (t *Tag) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Tag(s)
	return nil
}

// KeywordRecord is the structured result of extracting keywords from one utterance
type KeywordRecord struct {
	ProductType  Tag    `json:"productType"`
	SkinType     Tag    `json:"skinType"`
	Concern      Tag    `json:"concern"`
	PriceRange   Tag    `json:"priceRange"`
	Ingredient   Tag    `json:"ingredient"`
	Intent       Tag    `json:"intent"`
	OriginalText string `json:"originalText"`
}

// HasTags reports whether any category matched
func (k KeywordRecord) HasTags() bool {
	return k.ProductType != "" || k.SkinType != "" || k.Concern != "" ||
		k.PriceRange != "" || k.Ingredient != "" || k.Intent != ""
}

// Price tiers
const (
	PriceLow    Tag = "low"
	PriceMedium Tag = "medium"
	PriceHigh   Tag = "high"
)
