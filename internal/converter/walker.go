package converter

import (
	"sort"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SegmentWalker 遍历 goldmark AST，收集不参与换算的区域
type SegmentWalker struct {
	segments []Segment
}

// NewSegmentWalker 创建新的 SegmentWalker
func NewSegmentWalker() *SegmentWalker {
	return &SegmentWalker{
		segments: make([]Segment, 0),
	}
}

// Walk 遍历 AST 节点
func (w *SegmentWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	switch n := node.(type) {
	case *ast.FencedCodeBlock:
		w.addLines("code_block", n.Lines())
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		w.addLines("code_block", n.Lines())
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock:
		w.addLines("html_block", n.Lines())
		if n.HasClosure() {
			w.add("html_block", n.ClosureLine)
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeSpan:
		start, end := -1, -1
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				if start < 0 {
					start = t.Segment.Start
				}
				end = t.Segment.Stop
			}
		}
		if start >= 0 {
			w.segments = append(w.segments, Segment{Kind: "code_span", Start: start, End: end})
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			w.add("raw_html", n.Segments.At(i))
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (w *SegmentWalker) addLines(kind string, lines *text.Segments) {
	if lines == nil || lines.Len() == 0 {
		return
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	w.segments = append(w.segments, Segment{Kind: kind, Start: first.Start, End: last.Stop})
}

func (w *SegmentWalker) add(kind string, seg text.Segment) {
	if seg.Stop > seg.Start {
		w.segments = append(w.segments, Segment{Kind: kind, Start: seg.Start, End: seg.Stop})
	}
}

// Result 返回按位置排序、合并重叠后的区域
func (w *SegmentWalker) Result() []Segment {
	segs := make([]Segment, len(w.segments))
	copy(segs, w.segments)
	sort.Slice(segs, func(i, j int) bool {
		return segs[i].Start < segs[j].Start
	})

	merged := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if n := len(merged); n > 0 && s.Start <= merged[n-1].End {
			if s.End > merged[n-1].End {
				merged[n-1].End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
