package converter

import (
	"strings"

	"github.com/riverfjs/metricify-go/internal/types"
	"github.com/riverfjs/metricify-go/internal/util"
)

// ConvertProse 只在 segments 之外的区域换算尺寸
//
// 每个区域单独扫描；位于末尾之前的区域，其结尾不算作输入结尾
func ConvertProse(source string, segments []Segment, config *RenderConfig, warn Diagnostic) (string, []Dimension) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	var result strings.Builder
	all := make([]Dimension, 0)
	cursor := 0

	emit := func(end int) {
		part := source[cursor:end]
		converted, dims := ConvertDimensions(part, end == len(source), config, warn)
		base := result.Len()
		sourceUTF16 := util.UTF16Len(source[:cursor])
		outputUTF16 := util.UTF16Len(result.String())
		for _, d := range dims {
			d.Source.Start += cursor
			d.Source.End += cursor
			d.Source.UTF16Start += sourceUTF16
			d.Source.UTF16End += sourceUTF16
			d.Output.Start += base
			d.Output.End += base
			d.Output.UTF16Start += outputUTF16
			d.Output.UTF16End += outputUTF16
			all = append(all, d)
		}
		result.WriteString(converted)
	}

	for _, seg := range segments {
		if seg.Start < cursor || seg.End > len(source) {
			continue
		}
		if seg.Start > cursor {
			emit(seg.Start)
		}
		result.WriteString(source[seg.Start:seg.End])
		cursor = seg.End
	}
	if cursor < len(source) {
		emit(len(source))
	}
	return result.String(), all
}
