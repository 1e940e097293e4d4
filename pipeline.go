package metricify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/riverfjs/metricify-go/internal/converter"
	"github.com/riverfjs/metricify-go/internal/parser"
)

// ConvertHTML 转换 HTML 文档中目标元素内的尺寸
//
// 默认只处理 class 含有 RenderConfig.TargetClass 的元素；已带有
// RenderConfig.MarkerAttr="true" 的元素跳过，转换过的元素会被加上该标记。
// script、style 等原始文本元素以及已有的换算 span 不会被修改
//
// 返回：
//   - int: 换算的尺寸组数量
//   - error: 解析、渲染错误或 ctx 被取消
func ConvertHTML(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (int, error) {
	options := applyOptions(opts...)
	return converter.ConvertHTML(ctx, r, w, converter.HTMLOptions{
		Config:      options.Config,
		AllElements: options.AllElements,
		Fragment:    options.Fragment,
		Warn:        warnf,
	})
}

// ConvertMarkdown 转换 Markdown 正文中的尺寸，代码与原始 HTML 保持不变
func ConvertMarkdown(markdown string, opts ...Option) string {
	converted, _ := ConvertMarkdownWithSpans(markdown, opts...)
	return converted
}

// ConvertMarkdownWithSpans 类似 ConvertMarkdown()，但还返回尺寸组信息
func ConvertMarkdownWithSpans(markdown string, opts ...Option) (string, []Dimension) {
	options := applyOptions(opts...)
	return parser.Parse(markdown, options.Config, warnf)
}

// ProcessDocument 完整管道：读取 r，按 format 转换，写入 w
//
// 返回换算的尺寸组数量
func ProcessDocument(ctx context.Context, r io.Reader, w io.Writer, format Format, opts ...Option) (int, error) {
	if format == FormatHTML {
		return ConvertHTML(ctx, r, w, opts...)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var (
		out  string
		dims []Dimension
	)
	switch format {
	case FormatText:
		options := applyOptions(opts...)
		out, dims = ConvertDimensionsWithSpans(sb.String(), options.Config)
	case FormatMarkdown:
		out, dims = ConvertMarkdownWithSpans(sb.String(), opts...)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return len(dims), fmt.Errorf("writing output: %w", err)
	}
	return len(dims), nil
}
