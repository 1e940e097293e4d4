package converter

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/metricify-go/internal/markup"
	"github.com/riverfjs/metricify-go/internal/types"
)

// rawTextElements 内容不是普通文本节点的元素，不做处理
var rawTextElements = map[atom.Atom]bool{
	atom.Script:    true,
	atom.Style:     true,
	atom.Textarea:  true,
	atom.Title:     true,
	atom.Noscript:  true,
	atom.Iframe:    true,
	atom.Xmp:       true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Plaintext: true,
}

// HTMLOptions HTML 转换选项
type HTMLOptions struct {
	Config *RenderConfig
	// AllElements 处理 <body> 下的全部文本，而不是仅目标 class 的元素
	AllElements bool
	// Fragment 输入是 HTML 片段，输出时不补全 <html><head><body>
	Fragment bool
	Warn     Diagnostic
}

// HTMLWalker 遍历 HTML 树并就地替换尺寸文本
type HTMLWalker struct {
	ctx    context.Context
	config *RenderConfig
	all    bool
	warn   Diagnostic
}

// NewHTMLWalker 创建新的 HTMLWalker
func NewHTMLWalker(ctx context.Context, opts HTMLOptions) *HTMLWalker {
	config := opts.Config
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &HTMLWalker{
		ctx:    ctx,
		config: config,
		all:    opts.AllElements,
		warn:   opts.Warn,
	}
}

// Walk 处理 n 及其子树，返回换算的尺寸组数量
//
// 已带有标记属性的目标元素不会重复处理，但仍会进入其子树寻找
// 未处理的目标元素
func (w *HTMLWalker) Walk(n *html.Node) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}
	if n.Type == html.ElementNode {
		if rawTextElements[n.DataAtom] || markup.IsSpan(n, w.config) {
			return 0, nil
		}
		if w.isTarget(n) && markup.Attr(n, w.config.MarkerAttr) != "true" {
			count := w.convertChildren(n, true)
			if count > 0 {
				markup.SetAttr(n, w.config.MarkerAttr, "true")
			}
			return count, nil
		}
	}

	total := 0
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		count, err := w.Walk(c)
		total += count
		if err != nil {
			return total, err
		}
		c = next
	}
	return total, nil
}

func (w *HTMLWalker) isTarget(n *html.Node) bool {
	if w.all {
		return n.DataAtom == atom.Body
	}
	return markup.HasClass(n, w.config.TargetClass)
}

// convertChildren 处理元素内容。final 表示其后在目标元素内没有其他内容，
// 只有这种文本节点的结尾才算作输入结尾
func (w *HTMLWalker) convertChildren(parent *html.Node, final bool) int {
	count := 0
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		last := final && next == nil
		switch c.Type {
		case html.TextNode:
			count += w.convertText(c, last)
		case html.ElementNode:
			if !rawTextElements[c.DataAtom] && !markup.IsSpan(c, w.config) {
				count += w.convertChildren(c, last)
			}
		}
		c = next
	}
	return count
}

// convertText 将文本节点拆分为文本与 span 节点
func (w *HTMLWalker) convertText(t *html.Node, final bool) int {
	dims := ScanDimensions(t.Data, final, w.warn)
	if len(dims) == 0 {
		return 0
	}
	parent := t.Parent
	cursor := 0
	for _, d := range dims {
		if d.Source.Start > cursor {
			parent.InsertBefore(&html.Node{Type: html.TextNode, Data: t.Data[cursor:d.Source.Start]}, t)
		}
		parent.InsertBefore(markup.SpanNode(d.Metric, d.Title, w.config), t)
		cursor = d.Source.End
	}
	if cursor < len(t.Data) {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: t.Data[cursor:]}, t)
	}
	parent.RemoveChild(t)
	return len(dims)
}

// ConvertHTML 解析 HTML，转换目标元素中的尺寸并写回 w
func ConvertHTML(ctx context.Context, r io.Reader, out io.Writer, opts HTMLOptions) (int, error) {
	walker := NewHTMLWalker(ctx, opts)
	if opts.Fragment {
		return convertFragment(walker, r, out)
	}

	doc, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("parsing HTML: %w", err)
	}
	count, err := walker.Walk(doc)
	if err != nil {
		return count, err
	}
	if err := html.Render(out, doc); err != nil {
		return count, fmt.Errorf("rendering HTML: %w", err)
	}
	return count, nil
}

func convertFragment(walker *HTMLWalker, r io.Reader, out io.Writer) (int, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return 0, fmt.Errorf("parsing HTML fragment: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	count, err := walker.Walk(body)
	if err != nil {
		return count, err
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(out, c); err != nil {
			return count, fmt.Errorf("rendering HTML: %w", err)
		}
	}
	return count, nil
}
