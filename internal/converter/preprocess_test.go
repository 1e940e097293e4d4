package converter

import (
	"strings"
	"testing"
)

// TestConvertProse 测试跳过代码区域
func TestConvertProse(t *testing.T) {
	source := "Frame 5x7\" `8x10\"` and 2x3"
	start := strings.Index(source, "`")
	end := strings.LastIndex(source, "`") + 1
	segments := []Segment{{Kind: "code_span", Start: start, End: end}}

	got, dims := ConvertProse(source, segments, nil, nil)
	want := "Frame " + span("12.70x17.78 cm", "5x7") + "\" `8x10\"` and " + span("5.08x7.62 cm", "2x3")
	if got != want {
		t.Errorf("ConvertProse()\n got %q\nwant %q", got, want)
	}
	if len(dims) != 2 {
		t.Fatalf("found %d dimensions, want 2", len(dims))
	}
	last := dims[1]
	if source[last.Source.Start:last.Source.End] != "2x3" {
		t.Errorf("source span = %+v", last.Source)
	}
	if got[last.Output.Start:last.Output.End] != span("5.08x7.62 cm", "2x3") {
		t.Errorf("output span = %+v", last.Output)
	}
}

// TestConvertProse_GapBeforeCode 测试代码前的文本结尾不算输入结尾
func TestConvertProse_GapBeforeCode(t *testing.T) {
	source := "5x7`code`"
	segments := []Segment{{Kind: "code_span", Start: 3, End: len(source)}}
	got, dims := ConvertProse(source, segments, nil, nil)
	if got != source || len(dims) != 0 {
		t.Errorf("ConvertProse() = %q, %d dims; want unchanged", got, len(dims))
	}
}

// TestSegmentWalker_ResultUnsorted 测试区域排序与合并
func TestSegmentWalker_ResultUnsorted(t *testing.T) {
	w := NewSegmentWalker()
	w.segments = append(w.segments,
		Segment{Kind: "code_span", Start: 20, End: 25},
		Segment{Kind: "code_block", Start: 0, End: 10},
		Segment{Kind: "raw_html", Start: 8, End: 12},
	)
	got := w.Result()
	if len(got) != 2 {
		t.Fatalf("Result() = %+v, want 2 segments", got)
	}
	if got[0].Start != 0 || got[0].End != 12 {
		t.Errorf("merged segment = %+v, want [0,12)", got[0])
	}
	if got[1].Start != 20 {
		t.Errorf("second segment = %+v", got[1])
	}
}
