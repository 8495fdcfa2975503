package response

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"ai-shopassist-be/pkg/assist/recommend"
	"ai-shopassist-be/pkg/store"
)

// Reply is the final presentation payload for one turn.
type Reply struct {
	Text   string `json:"reply"`
	IsHTML bool   `json:"isHtml"`
}

var (
	reBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic    = regexp.MustCompile(`\*([^*\n]+)\*`)
	reCodeFence = regexp.MustCompile("(?s)```[a-zA-Z]*\\n?(.*?)```")
)

// Formatter renders orchestrator decisions into the wire reply. It is pure
// presentation; it never changes which products a decision carries.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format converts a decision into the reply payload. Text-only decisions
// stay plain; anything carrying products or a comparison is rendered as an
// HTML fragment.
func (f *Formatter) Format(decision *recommend.Decision) Reply {
	message := Clean(decision.Message)

	switch {
	case decision.Comparison != nil && len(decision.Comparison.Products) > 0:
		var b strings.Builder
		f.writeProse(&b, message)
		f.writeComparisonTable(&b, decision.Comparison)
		return Reply{Text: b.String(), IsHTML: true}

	case len(decision.Products) > 0:
		var b strings.Builder
		f.writeProse(&b, message)
		b.WriteString(`<div class="product-grid">`)
		for _, p := range decision.Products {
			f.writeProductCard(&b, p)
		}
		b.WriteString(`</div>`)
		return Reply{Text: b.String(), IsHTML: true}

	default:
		// A prose-only reply still flips to HTML when the model used
		// markdown emphasis, since Clean rewrote it into tags.
		if hasEmphasis(decision.Message) {
			return Reply{Text: escapeKeepingEmphasis(message), IsHTML: true}
		}
		return Reply{Text: message, IsHTML: false}
	}
}

func hasEmphasis(raw string) bool {
	return reBold.MatchString(raw) || reItalic.MatchString(raw)
}

// Clean strips code fences the model sometimes wraps replies in and rewrites
// markdown emphasis into rich-text markup.
func Clean(text string) string {
	text = reCodeFence.ReplaceAllString(text, "$1")
	text = reBold.ReplaceAllString(text, "<strong>$1</strong>")
	text = reItalic.ReplaceAllString(text, "<em>$1</em>")
	return strings.TrimSpace(text)
}

func (f *Formatter) writeProse(b *strings.Builder, message string) {
	if message == "" {
		return
	}
	b.WriteString(`<p class="assistant-message">`)
	b.WriteString(escapeKeepingEmphasis(message))
	b.WriteString(`</p>`)
}

func (f *Formatter) writeProductCard(b *strings.Builder, p store.Product) {
	b.WriteString(`<div class="product-card">`)
	fmt.Fprintf(b, `<img class="product-image" src="%s" alt="%s">`,
		html.EscapeString(p.Image), html.EscapeString(p.Name))
	fmt.Fprintf(b, `<h4 class="product-name">%s</h4>`, html.EscapeString(p.Name))
	fmt.Fprintf(b, `<p class="product-price">%s</p>`, html.EscapeString(p.Price))

	features := p.Features
	if len(features) > 3 {
		features = features[:3]
	}
	if len(features) > 0 {
		b.WriteString(`<ul class="product-features">`)
		for _, feat := range features {
			fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(feat))
		}
		b.WriteString(`</ul>`)
	}

	fmt.Fprintf(b, `<div class="product-actions">`+
		`<button class="btn-view" data-product="%s">View Details</button>`+
		`<button class="btn-cart" data-product="%s">Add to Cart</button>`+
		`</div>`,
		html.EscapeString(p.Name), html.EscapeString(p.Name))
	b.WriteString(`</div>`)
}

func (f *Formatter) writeComparisonTable(b *strings.Builder, c *recommend.Comparison) {
	b.WriteString(`<table class="comparison-table"><thead><tr><th>Feature</th>`)
	for _, name := range c.Products {
		fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(name))
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, label := range orderedFeatureLabels(c) {
		values := c.Features[label]
		fmt.Fprintf(b, "<tr><td>%s</td>", html.EscapeString(label))
		for i := range c.Products {
			cell := "-"
			if i < len(values) && strings.TrimSpace(values[i]) != "" {
				cell = values[i]
			}
			fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>")
	}
	b.WriteString(`</tbody></table>`)
}

// orderedFeatureLabels keeps well-known rows first and the rest in a stable
// alphabetical order, since map iteration would shuffle the table per turn.
func orderedFeatureLabels(c *recommend.Comparison) []string {
	preferred := []string{"Price", "Brand", "Highlight"}
	var labels []string
	seen := make(map[string]bool)
	for _, label := range preferred {
		if _, ok := c.Features[label]; ok {
			labels = append(labels, label)
			seen[label] = true
		}
	}
	var rest []string
	for label := range c.Features {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	return append(labels, rest...)
}

// escapeKeepingEmphasis escapes prose while preserving the strong/em tags
// Clean just produced.
func escapeKeepingEmphasis(text string) string {
	text = html.EscapeString(text)
	for _, tag := range []string{"strong", "em"} {
		text = strings.ReplaceAll(text, "&lt;"+tag+"&gt;", "<"+tag+">")
		text = strings.ReplaceAll(text, "&lt;/"+tag+"&gt;", "</"+tag+">")
	}
	return text
}
