package converter

import (
	"reflect"
	"testing"

	"github.com/yuin/goldmark/text"
)

// TestSegmentWalker_Result 测试区域排序与合并
func TestSegmentWalker_Result(t *testing.T) {
	w := NewSegmentWalker()
	w.add("raw_html", text.NewSegment(20, 25))
	w.add("code_span", text.NewSegment(2, 6))
	w.add("raw_html", text.NewSegment(5, 9))
	w.add("raw_html", text.NewSegment(9, 12))
	w.add("raw_html", text.NewSegment(30, 30))

	want := []Segment{
		{Kind: "code_span", Start: 2, End: 12},
		{Kind: "raw_html", Start: 20, End: 25},
	}
	if got := w.Result(); !reflect.DeepEqual(got, want) {
		t.Errorf("Result() = %+v, want %+v", got, want)
	}
}

// TestSegmentWalker_Empty 测试空遍历
func TestSegmentWalker_Empty(t *testing.T) {
	w := NewSegmentWalker()
	w.addLines("code_block", nil)
	if got := w.Result(); len(got) != 0 {
		t.Errorf("Result() = %+v, want empty", got)
	}
}
