package parser

import (
	"strings"
	"testing"
)

// TestParse_SkipsCode 测试代码块与行内代码保持不变
func TestParse_SkipsCode(t *testing.T) {
	markdown := "# Frames\n\nThe 5x7\" frame.\n\n```\nsize = 8x10\n```\n\nUse `12x16` or 11 x 14"
	got, dims := Parse(markdown, nil, nil)
	if len(dims) != 2 {
		t.Fatalf("Parse() found %d dimensions, want 2: %q", len(dims), got)
	}
	if !strings.Contains(got, "size = 8x10\n") {
		t.Errorf("fenced code was modified: %q", got)
	}
	if !strings.Contains(got, "`12x16`") {
		t.Errorf("code span was modified: %q", got)
	}
	if !strings.Contains(got, `title="5x7">12.70x17.78 cm</span>"`) {
		t.Errorf("prose dimension not converted: %q", got)
	}
	if !strings.HasSuffix(got, `title="11x14">27.94x35.56 cm</span>`) {
		t.Errorf("trailing dimension not converted: %q", got)
	}
}

// TestParse_IndentedAndHTML 测试缩进代码块与 HTML 块
func TestParse_IndentedAndHTML(t *testing.T) {
	markdown := "Intro\n\n    4x6\n\n<div>\n3x5\"\n</div>\n\nOutro 2x2"
	got, dims := Parse(markdown, nil, nil)
	if len(dims) != 1 || dims[0].Title != "2x2" {
		t.Fatalf("Parse() dims = %+v, want only 2x2", dims)
	}
	if !strings.Contains(got, "    4x6\n") || !strings.Contains(got, "3x5\"\n") {
		t.Errorf("code or html block was modified: %q", got)
	}
}

// TestSegments 测试区域收集
func TestSegments(t *testing.T) {
	source := []byte("a `b` c <span>d</span>")
	segs := Segments(source)
	if len(segs) != 3 {
		t.Fatalf("Segments() = %+v, want 3", segs)
	}
	if string(source[segs[0].Start:segs[0].End]) != "b" {
		t.Errorf("code span segment = %q", source[segs[0].Start:segs[0].End])
	}
	if string(source[segs[1].Start:segs[1].End]) != "<span>" {
		t.Errorf("raw html segment = %q", source[segs[1].Start:segs[1].End])
	}
}
