// Package lexicon holds the surface-form to tag tables used to understand
// voice queries. Every category is an ordered list: entries are checked in
// declaration order and the first pattern contained in the text wins, so
// longer phrases must be declared before the shorter phrases they contain.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/souqly/voicesearch/internal/domain"
)

// Category identifies one lexicon table
type Category string

const (
	ProductType Category = "productType"
	SkinType    Category = "skinType"
	Concern     Category = "concern"
	PriceRange  Category = "priceRange"
	Ingredient  Category = "ingredient"
	Intent      Category = "intent"
)

// Categories lists every category in extraction order
var Categories = []Category{ProductType, SkinType, Concern, PriceRange, Ingredient, Intent}

// Entry maps one surface form to its canonical tag
type Entry struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Tag     string `yaml:"tag" json:"tag"`
}

// Lexicon is an immutable set of ordered tables. It is safe for concurrent use.
type Lexicon struct {
	entries map[Category][]Entry
	tags    map[Category]map[string]bool
	labels  map[string]string
}

// Default returns the built-in lexicon
func Default() *Lexicon {
	l, err := build(defaultEntries, nil)
	if err != nil {
		// built-in tables are static; a failure here is a programming error
		panic(fmt.Sprintf("lexicon: invalid built-in tables: %v", err))
	}
	return l
}

// build normalizes patterns and assembles a lexicon. Entries in extra are
// placed ahead of the base entries of the same category and may only use
// tags the base already defines.
func build(base map[Category][]Entry, extra map[Category][]Entry) (*Lexicon, error) {
	l := &Lexicon{
		entries: make(map[Category][]Entry, len(Categories)),
		tags:    make(map[Category]map[string]bool, len(Categories)),
		labels:  defaultLabels,
	}

	for _, c := range Categories {
		known := make(map[string]bool)
		for _, e := range base[c] {
			known[e.Tag] = true
		}
		l.tags[c] = known

		var ordered []Entry
		for _, e := range extra[c] {
			if !known[e.Tag] {
				return nil, fmt.Errorf("category %s: unknown tag %q", c, e.Tag)
			}
			ordered = append(ordered, e)
		}
		ordered = append(ordered, base[c]...)

		normalized := make([]Entry, 0, len(ordered))
		for _, e := range ordered {
			p := Normalize(e.Pattern)
			if p == "" {
				return nil, fmt.Errorf("category %s: empty pattern for tag %q", c, e.Tag)
			}
			normalized = append(normalized, Entry{Pattern: p, Tag: e.Tag})
		}
		l.entries[c] = normalized
	}

	for c := range extra {
		if _, ok := l.tags[c]; !ok {
			return nil, fmt.Errorf("unknown category %q", c)
		}
	}

	return l, nil
}

// Extend returns a new lexicon whose extra entries are checked before the
// existing ones. Extra entries must reuse tags already known to the category.
func (l *Lexicon) Extend(extra map[Category][]Entry) (*Lexicon, error) {
	return build(l.entries, extra)
}

// Match returns the tag of the first entry whose pattern is contained in the
// normalized text. Containment is substring based, not word based.
func (l *Lexicon) Match(c Category, normalized string) (domain.Tag, bool) {
	if normalized == "" {
		return "", false
	}
	for _, e := range l.entries[c] {
		if strings.Contains(normalized, e.Pattern) {
			return domain.Tag(e.Tag), true
		}
	}
	return "", false
}

// Entries returns a copy of the ordered entries of a category
func (l *Lexicon) Entries(c Category) []Entry {
	out := make([]Entry, len(l.entries[c]))
	copy(out, l.entries[c])
	return out
}

// HasTag reports whether tag belongs to the category's tag set
func (l *Lexicon) HasTag(c Category, tag domain.Tag) bool {
	return l.tags[c][string(tag)]
}

// Label returns the Arabic display label of a tag, or the tag itself
func (l *Lexicon) Label(tag domain.Tag) string {
	if label, ok := l.labels[string(tag)]; ok {
		return label
	}
	return string(tag)
}
