package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

// maxReplyParts caps spoken replies
const maxReplyParts = 3

// Trigger words scanned in the original utterance, matched on whole tokens
var (
	greetingTriggers = []string{
		"السلام", "سلام", "السلام عليكم", "مرحبا", "أهلا", "اهلا", "صباح الخير", "مساء الخير",
		"salam", "bonjour", "salut", "hello", "hi",
	}
	questionTriggers = []string{
		"واش", "شنو", "هل", "كيفاش", "كيف", "علاش", "لماذا", "ماذا", "wach", "pourquoi", "comment",
	}
	gratitudeTriggers = []string{
		"شكرا", "الله يعطيك الصحة", "بارك الله فيك", "يعطيك الصحة", "merci", "thanks", "thank you", "choukran",
	}
	priceTriggers = []string{
		"بشحال", "شحال", "بكم", "ثمن", "الثمن", "سعر", "السعر", "prix", "combien", "price",
	}
)

// Reply templates
const (
	openingGreeting     = "أهلا وسهلا!"
	openingQuestion     = "سؤال مزيان!"
	openingGratitude    = "العفو، فالخدمة ديالك!"
	openingPersonalized = "مرحبا %s!"

	mainPriceKnown   = "%s ثمنه %s درهم."
	mainPriceUnknown = "%s متوفر، ولكن الثمن ما باينش دابا."

	mainQueryNone  = "ما لقيت حتى منتج على \"%s\"."
	mainQueryCount = "لقيت %d منتج على \"%s\"."
	mainCountOnly  = "لقيت %d منتج."
	mainNone       = "ما لقيت حتى منتج."

	bandNone = "للأسف ما لقيت حتى %s دابا."
	bandOne  = "لقيت ليك %s واحد."
	bandFew  = "لقيت ليك %d ديال %s."
	bandMany = "عندنا بزاف ديال الاختيارات: %d ديال %s."

	unavailableNamed = "سمح ليا %s، ما قدرتش نوصل للمتجر دابا. عاود من بعد شوية."
	unavailable      = "سمح ليا، ما قدرتش نوصل للمتجر دابا. عاود من بعد شوية."
)

var skinTypeAdvice = map[domain.Tag]string{
	"oily":        "للبشرة الدهنية، ختار منتجات خفيفة وبلا زيوت.",
	"dry":         "للبشرة الجافة، استعمل مرطب غني مرتين فالنهار.",
	"sensitive":   "للبشرة الحساسة، جرب المنتج على بلاصة صغيرة قبل ما تستعملو.",
	"combination": "للبشرة المختلطة، رطب المناطق الجافة وخفف على المنطقة الوسطى.",
	"normal":      "للبشرة العادية، روتين بسيط ديال غسول ومرطب وواقي الشمس كافي.",
	"mature":      "للبشرة الناضجة، الريتينول والكولاجين كيعاونو على المرونة.",
	"dull":        "للبشرة الباهتة، فيتامين سي كيرجع النضارة.",
}

var concernAdvice = map[domain.Tag]string{
	"acne":         "لحب الشباب، نقي وجهك مرتين فالنهار وما تقيسش الحبوب.",
	"blackheads":   "للرؤوس السوداء، استعمل مقشر لطيف مرة ولا جوج فالسيمانة.",
	"brightening":  "للتفتيح، ما تنساش واقي الشمس كل صباح.",
	"hydration":    "للترطيب، شرب الما بزاف واستعمل مرطب بعد الغسيل.",
	"anti-aging":   "للتجاعيد، استعمل الريتينول فالليل وواقي الشمس فالنهار.",
	"pigmentation": "للتصبغات، واقي الشمس ضروري كل نهار.",
	"dark circles": "للهالات السوداء، النعاس المزيان وكريم العين كيعاونو.",
	"pores":        "للمسام، غسول لطيف وتونر كيصغروها.",
	"firming":      "لشد البشرة، دلك الكريم للفوق بشوية.",
	"redness":      "للاحمرار، تجنب الما السخون والمنتجات اللي فيها العطر.",
}

// ResponseGenerator builds the short spoken reply for a search result
type ResponseGenerator struct {
	lexicon   *lexicon.Lexicon
	greeting  [][]string
	question  [][]string
	gratitude [][]string
	price     [][]string
}

// NewResponseGenerator creates a generator using the lexicon's tag labels.
// A nil lexicon uses the built-in tables.
func NewResponseGenerator(lex *lexicon.Lexicon) *ResponseGenerator {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &ResponseGenerator{
		lexicon:   lex,
		greeting:  triggerPhrases(greetingTriggers),
		question:  triggerPhrases(questionTriggers),
		gratitude: triggerPhrases(gratitudeTriggers),
		price:     triggerPhrases(priceTriggers),
	}
}

// Generate assembles opening, main result and advice, keeping at most three
// parts. It is deterministic for a given input.
func (g *ResponseGenerator) Generate(
	products []domain.RankedProduct,
	keywords domain.KeywordRecord,
	searchQuery string,
	userName string,
) string {
	normalized := lexicon.Normalize(keywords.OriginalText)
	tokens := tokenize(keywords.OriginalText)

	parts := []string{
		g.opening(normalized, tokens, userName),
		g.mainResult(products, keywords, searchQuery, tokens),
	}

	if len(products) > 0 {
		parts = append(parts, skinTypeAdvice[keywords.SkinType], concernAdvice[keywords.Concern])
	}

	return joinParts(parts, maxReplyParts)
}

// GenerateUnavailable is spoken when the catalog could not be reached
func (g *ResponseGenerator) GenerateUnavailable(userName string) string {
	if name := strings.TrimSpace(userName); name != "" {
		return fmt.Sprintf(unavailableNamed, name)
	}
	return unavailable
}

func (g *ResponseGenerator) opening(normalized string, tokens []string, userName string) string {
	switch {
	case containsAnyPhrase(tokens, g.greeting):
		return openingGreeting
	case strings.ContainsAny(normalized, "?؟") || containsAnyPhrase(tokens, g.question):
		return openingQuestion
	case containsAnyPhrase(tokens, g.gratitude):
		return openingGratitude
	}
	if name := strings.TrimSpace(userName); name != "" {
		return fmt.Sprintf(openingPersonalized, name)
	}
	return ""
}

func (g *ResponseGenerator) mainResult(
	products []domain.RankedProduct,
	keywords domain.KeywordRecord,
	searchQuery string,
	tokens []string,
) string {
	count := len(products)

	if count == 1 && containsAnyPhrase(tokens, g.price) {
		p := products[0]
		if !p.Price.Valid {
			return fmt.Sprintf(mainPriceUnknown, p.Name)
		}
		return fmt.Sprintf(mainPriceKnown, p.Name, formatPrice(p.Price.Value))
	}

	if searchQuery != "" || !keywords.HasTags() {
		switch {
		case searchQuery == "" && count == 0:
			return mainNone
		case searchQuery == "":
			return fmt.Sprintf(mainCountOnly, count)
		case count == 0:
			return fmt.Sprintf(mainQueryNone, searchQuery)
		default:
			return fmt.Sprintf(mainQueryCount, count, searchQuery)
		}
	}

	subject := g.subject(keywords)
	switch {
	case count == 0:
		return fmt.Sprintf(bandNone, subject)
	case count == 1:
		return fmt.Sprintf(bandOne, subject)
	case count <= 5:
		return fmt.Sprintf(bandFew, count, subject)
	default:
		return fmt.Sprintf(bandMany, count, subject)
	}
}

// subject names the product type and skin type, e.g. "سيروم للبشرة الدهنية"
func (g *ResponseGenerator) subject(keywords domain.KeywordRecord) string {
	subject := "منتج"
	if keywords.ProductType != "" {
		subject = g.lexicon.Label(keywords.ProductType)
	}
	if keywords.SkinType != "" {
		subject += " للبشرة " + g.lexicon.Label(keywords.SkinType)
	}
	return subject
}

// formatPrice prints prices without trailing zeros
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// joinParts keeps the first limit non-empty parts
func joinParts(parts []string, limit int) string {
	kept := make([]string, 0, limit)
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(kept) == limit {
			break
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, " ")
}

func triggerPhrases(words []string) [][]string {
	phrases := make([][]string, 0, len(words))
	for _, w := range lexicon.NormalizeAll(words) {
		phrases = append(phrases, strings.Fields(w))
	}
	return phrases
}

// containsAnyPhrase reports whether any phrase occurs as a contiguous token run
func containsAnyPhrase(tokens []string, phrases [][]string) bool {
	for i := range tokens {
		for _, phrase := range phrases {
			if hasPhraseAt(tokens[i:], phrase) {
				return true
			}
		}
	}
	return false
}

func hasPhraseAt(tokens, phrase []string) bool {
	if len(phrase) > len(tokens) {
		return false
	}
	for j, w := range phrase {
		if tokens[j] != w {
			return false
		}
	}
	return true
}
