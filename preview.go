package metricify

import (
	"io"

	"github.com/riverfjs/metricify-go/internal/preview"
)

// 导出类型别名
type (
	Box            = preview.Box
	PreviewOptions = preview.Options
)

var (
	// ErrUnsupportedDimensions 公制文本不是 2 或 3 个维度
	ErrUnsupportedDimensions = preview.ErrUnsupportedDimensions
	// ErrInvalidValue 某个维度没有可解析的数字
	ErrInvalidValue = preview.ErrInvalidValue
)

// DefaultPreviewOptions 返回默认绘制选项（320x240，白底蓝线）
func DefaultPreviewOptions() *PreviewOptions {
	return preview.DefaultOptions()
}

// ParseMetricBox 从换算结果（如 "79.06x12.70x5.08 cm"）解析长方体尺寸
//
// 两个维度时深度取 1
func ParseMetricBox(text string) (Box, error) {
	return preview.ParseBox(text)
}

// RenderPreview 将换算结果绘制为等轴测线框图，以 PNG 写入 w
//
// 参数：
//   - text: span 中的公制文本
//   - w: PNG 输出
//   - opts: 绘制选项，如为 nil 则使用默认 320x240 画布
func RenderPreview(text string, w io.Writer, opts *PreviewOptions) error {
	box, err := ParseMetricBox(text)
	if err != nil {
		return err
	}
	return preview.EncodePNG(w, box, opts)
}
