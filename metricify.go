// Package metricify 将文本中的英寸尺寸换算为厘米
//
// 这个包扫描自由文本中的英寸尺寸写法（如 31 1/8 x 5½ x 2"），换算为
// 保留两位小数的厘米值，并用带有原始尺寸 title 的 span 包裹。
//
// 核心功能：
//   - 解析整数、小数、带分数（31 1/8）与 Unicode 分数字符（5½）
//   - 识别 2 或 3 个维度的尺寸组，要求其后为双引号或文本末尾
//   - 转换 HTML 文档中的目标元素，并标记已处理元素
//   - 转换 Markdown 正文，跳过代码
//   - 将换算结果绘制为等轴测线框预览图（PNG）
//
// 主要 API：
//   - ConvertDimensions(): 纯文本替换
//   - ParseNumericToken(): 单个分量解析
//   - Metricify(): 按格式处理整个文档
//
// 示例：
//
//	out := metricify.ConvertDimensions(`Frame 31 1/8 x 5½ x 2"`)
//	// Frame <span class="metric-converted" title="31 1/8x5½x2">79.06x13.97x5.08 cm</span>"
//
//	n, err := metricify.Metricify(ctx, r, w, metricify.FormatHTML)
//
// 所有函数都不持有跨调用的状态，可并发调用。
package metricify

import (
	"context"
	"io"
)

// Metricify 读取 r 中的文档，换算尺寸后写入 w
//
// 这是文档级的主要 API。对于单段文本，使用 ConvertDimensions()。
//
// 参数：
//   - ctx: 上下文
//   - r: 输入文档
//   - w: 输出
//   - format: 文档格式（FormatText、FormatHTML、FormatMarkdown）
//   - opts: 转换选项
//
// 返回：
//   - int: 换算的尺寸组数量
//   - error: 错误信息
func Metricify(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	format Format,
	opts ...Option,
) (int, error) {
	return ProcessDocument(ctx, r, w, format, opts...)
}
