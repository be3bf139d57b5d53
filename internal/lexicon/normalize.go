package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const tatweel = 'ـ'

// Normalize folds an utterance or pattern into the form used for matching:
// combining marks removed (Arabic harakat, hamza seats, Latin accents),
// tatweel removed, lowercased, whitespace collapsed and trimmed.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// transform chains carry state, so build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.Map(func(r rune) rune {
		if r == tatweel {
			return -1
		}
		return r
	}, folded)

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// NormalizeAll normalizes every string in the list, dropping empties
func NormalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}
