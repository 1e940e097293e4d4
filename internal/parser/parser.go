package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/metricify-go/internal/converter"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
}

// Parse 解析 Markdown，只在正文区域换算尺寸
//
// 代码块、行内代码与原始 HTML 原样保留
func Parse(markdown string, config *converter.RenderConfig, warn converter.Diagnostic) (string, []converter.Dimension) {
	source := []byte(markdown)
	segments := Segments(source)
	return converter.ConvertProse(markdown, segments, config, warn)
}

// Segments 返回不参与换算的区域
func Segments(source []byte) []converter.Segment {
	node := ParseAST(source)
	walker := converter.NewSegmentWalker()
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})
	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader)
}
