package catalog

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/souqly/voicesearch/internal/domain"
)

// MapProducts cleans catalog payloads for ranking and display
func MapProducts(raw []domain.Product) []domain.Product {
	products := make([]domain.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, MapProduct(p))
	}
	return products
}

// MapProduct strips HTML from the text fields and fills the price from the
// regular price when the sale price is missing
func MapProduct(p domain.Product) domain.Product {
	p.Name = StripHTML(p.Name)
	p.Description = StripHTML(p.Description)
	p.ShortDescription = StripHTML(p.ShortDescription)
	if p.Description == "" {
		p.Description = p.ShortDescription
	}

	if !p.Price.Valid {
		p.Price = p.RegularPrice
	}

	for i := range p.Tags {
		p.Tags[i].Name = StripHTML(p.Tags[i].Name)
	}

	return p
}

// blockElements end a line of text
var blockElements = map[string]bool{
	"p": true, "br": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true, "table": true,
}

// StripHTML returns the text content of an HTML fragment with entities
// decoded and whitespace collapsed. Script and style contents are dropped.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return strings.Join(strings.Fields(s), " ")
			}
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tt == html.StartTagToken && (tag == "script" || tag == "style") {
				skip++
			}
			if blockElements[tag] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
			if blockElements[tag] {
				b.WriteByte(' ')
			}
		}
	}
}
