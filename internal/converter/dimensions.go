package converter

import (
	"strings"

	"github.com/riverfjs/metricify-go/internal/buffer"
	"github.com/riverfjs/metricify-go/internal/fraction"
	"github.com/riverfjs/metricify-go/internal/markup"
	"github.com/riverfjs/metricify-go/internal/metric"
	"github.com/riverfjs/metricify-go/internal/scanner"
	"github.com/riverfjs/metricify-go/internal/types"
)

// 类型别名
type (
	RenderConfig = types.RenderConfig
	Dimension    = types.Dimension
)

// Diagnostic 非阻塞的诊断输出
type Diagnostic func(format string, args ...interface{})

func (d Diagnostic) printf(format string, args ...interface{}) {
	if d != nil {
		d(format, args...)
	}
}

// Convert 换算一个尺寸组
//
// 任一分量解析失败时返回 false，调用方应原样保留匹配文本
func Convert(g scanner.Group) (Dimension, bool) {
	inches := make([]float64, 0, len(g.Components))
	for _, c := range g.Components {
		v, ok := fraction.Parse(c)
		if !ok {
			return Dimension{}, false
		}
		inches = append(inches, v)
	}

	cm := make([]string, len(inches))
	for i, v := range inches {
		cm[i] = metric.Centimeters(v)
	}

	return Dimension{
		Components:  g.Components,
		Match:       g.Match,
		Title:       strings.Join(g.Components, types.Separator),
		Inches:      inches,
		Centimeters: cm,
		Metric:      strings.Join(cm, types.Separator) + " " + types.UnitSuffix,
		Source:      g.Span,
	}, true
}

// ScanDimensions 扫描并换算 text 中的尺寸组（不改写文本）
func ScanDimensions(text string, final bool, warn Diagnostic) []Dimension {
	groups, err := scanner.ScanContinued(text, final)
	if err != nil {
		warn.printf("Dimension scan stopped early: %v", err)
	}
	dims := make([]Dimension, 0, len(groups))
	for _, g := range groups {
		d, ok := Convert(g)
		if !ok {
			warn.printf("Failed to convert dimensions: %s", g.Match)
			continue
		}
		dims = append(dims, d)
	}
	return dims
}

// ConvertDimensions 将 text 中的尺寸组替换为公制 span
//
// 返回改写后的文本以及每个被替换的尺寸组（含输出位置）
func ConvertDimensions(text string, final bool, config *RenderConfig, warn Diagnostic) (string, []Dimension) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	dims := ScanDimensions(text, final, warn)
	if len(dims) == 0 {
		return text, dims
	}

	buf := buffer.New()
	cursor := 0
	for i := range dims {
		d := &dims[i]
		buf.Write(text[cursor:d.Source.Start])
		d.Output.Start = buf.ByteOffset()
		d.Output.UTF16Start = buf.UTF16Offset()
		buf.Write(markup.Span(d.Metric, d.Title, config))
		d.Output.End = buf.ByteOffset()
		d.Output.UTF16End = buf.UTF16Offset()
		cursor = d.Source.End
	}
	buf.Write(text[cursor:])
	return buf.String(), dims
}
