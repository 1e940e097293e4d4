package converter

// Segment 记录 Markdown 中不参与换算的区域（代码块、行内代码、原始 HTML）
type Segment struct {
	Kind  string // "code_block", "code_span", "html_block" or "raw_html"
	Start int    // 起始位置（字节）
	End   int    // 结束位置（字节）
}
