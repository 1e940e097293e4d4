package metricify

import (
	"github.com/riverfjs/metricify-go/internal/converter"
	"github.com/riverfjs/metricify-go/internal/fraction"
)

// ParseNumericToken 将单个尺寸分量解析为十进制英寸值
//
// 支持的写法（按优先级）：
//   - "31 1/8"：整数 + 空白 + 分数，分母为 0 时只取整数部分
//   - "5½"：整数 + Unicode 分数字符
//   - "5"、"5.25"：整数或小数
//
// 单独的分数字符（如 "¾"）、空串与其他文本返回 false
func ParseNumericToken(token string) (float64, bool) {
	return fraction.Parse(token)
}

// ConvertDimensions 将文本中的英寸尺寸替换为厘米 span
//
// 尺寸组由 2 或 3 个数字以 x/X 连接，且其后必须紧跟（可有空白）双引号
// 或位于文本末尾。例如：
//
//	ConvertDimensions(`31 1/8 x 5 x 2"`)
//	// <span class="metric-converted" title="31 1/8x5x2">79.06x12.70x5.08 cm</span>"
//
// 无法解析的尺寸组原样保留并记录日志，不会中断扫描
func ConvertDimensions(text string) string {
	converted, _ := ConvertDimensionsWithSpans(text, nil)
	return converted
}

// ConvertDimensionsWithSpans 类似 ConvertDimensions()，但还返回每个被替换的
// 尺寸组及其在输入、输出中的位置
//
// 参数：
//   - text: 原始文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回：
//   - string: 替换后的文本
//   - []Dimension: 按出现顺序排列的尺寸组
func ConvertDimensionsWithSpans(text string, config *RenderConfig) (string, []Dimension) {
	if config == nil {
		config = DefaultConfig()
	}
	return converter.ConvertDimensions(text, true, config, warnf)
}

// ScanDimensions 返回 text 中可换算的尺寸组，不改写文本
func ScanDimensions(text string) []Dimension {
	return converter.ScanDimensions(text, true, warnf)
}

// CountDimensions 统计 text 中可换算的尺寸组数量
func CountDimensions(text string) int {
	return len(converter.ScanDimensions(text, true, nil))
}
