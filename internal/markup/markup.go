// Package markup renders converted dimensions as HTML spans.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/metricify-go/internal/types"
)

// Span renders
//
//	<span class="metric-converted" title="31 1/8x5x2">79.06x12.70x5.08 cm</span>
func Span(metric, title string, config *types.RenderConfig) string {
	var b strings.Builder
	b.WriteString(`<span class="`)
	b.WriteString(html.EscapeString(config.ClassName))
	b.WriteString(`" `)
	b.WriteString(config.TitleAttr)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(metric))
	b.WriteString(`</span>`)
	return b.String()
}

// SpanNode builds the same span as an element node.
func SpanNode(metric, title string, config *types.RenderConfig) *html.Node {
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr: []html.Attribute{
			{Key: "class", Val: config.ClassName},
			{Key: config.TitleAttr, Val: title},
		},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: metric})
	return span
}

// IsSpan reports whether n is a span produced by SpanNode (or parsed from
// Span output).
func IsSpan(n *html.Node, config *types.RenderConfig) bool {
	if n == nil || n.Type != html.ElementNode || n.DataAtom != atom.Span {
		return false
	}
	return HasClass(n, config.ClassName)
}

// HasClass reports whether the class attribute of n contains class.
func HasClass(n *html.Node, class string) bool {
	if class == "" {
		return false
	}
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the value of the key attribute of n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets key on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
