package types

// UnitSuffix 公制结果的单位后缀
const UnitSuffix = "cm"

// Separator 各维度之间的连接符
const Separator = "x"

// Span 记录一段文本的位置（字节与 UTF-16 两种计量）
type Span struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	UTF16Start int `json:"utf16_start"`
	UTF16End   int `json:"utf16_end"`
}

// Dimension 表示一次成功换算的尺寸组
type Dimension struct {
	// Components 原始的 2 或 3 个数字片段，保持顺序
	Components []string `json:"components"`
	// Match 原始匹配文本（含空白与分隔符）
	Match string `json:"match"`
	// Title 以 "x" 连接的原始片段，用作 tooltip
	Title string `json:"title"`
	// Inches 各片段的十进制英寸值
	Inches []float64 `json:"inches"`
	// Centimeters 各片段换算后的两位小数字符串
	Centimeters []string `json:"centimeters"`
	// Metric 形如 "79.06x12.70x5.08 cm"
	Metric string `json:"metric"`
	// Source 匹配在输入文本中的位置
	Source Span `json:"source"`
	// Output 替换标记在输出文本中的位置
	Output Span `json:"output"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// ClassName 包裹换算结果的 span 的 class
	ClassName string
	// TitleAttr 保存原始尺寸的属性名
	TitleAttr string
	// TargetClass HTML 模式下需要处理的元素 class
	TargetClass string
	// MarkerAttr 已处理元素的标记属性，值为 "true"
	MarkerAttr string
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		ClassName:   "metric-converted",
		TitleAttr:   "title",
		TargetClass: "plp-price-module__description",
		MarkerAttr:  "data-metric-converted",
	}
}
