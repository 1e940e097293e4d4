package preview

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

// TestParseBox 测试从公制文本解析长宽高
func TestParseBox(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Box
		wantErr error
	}{
		{"three part", "79.06x12.70x5.08 cm", Box{79.06, 12.70, 5.08}, nil},
		{"two part gets default depth", "12.70x17.78 cm", Box{12.70, 17.78, 1}, nil},
		{"leading space", " 1.5x 2", Box{1.5, 2, 1}, nil},
		{"integer parts", "3x4x5", Box{3, 4, 5}, nil},
		{"one part", "12.70 cm", Box{}, ErrUnsupportedDimensions},
		{"four parts", "1x2x3x4", Box{}, ErrUnsupportedDimensions},
		{"empty", "", Box{}, ErrUnsupportedDimensions},
		{"non numeric", "axb", Box{}, ErrInvalidValue},
		{"lone dot", "1x.", Box{}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBox(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseBox(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBox(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseBox(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func countInk(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				n++
			}
		}
	}
	return n
}

// TestRender 测试渲染结果包含线条
func TestRender(t *testing.T) {
	img, err := Render(Box{79.06, 12.70, 5.08}, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 320, Y: 240}) {
		t.Errorf("image size = %v, want 320x240", got)
	}
	if countInk(img) == 0 {
		t.Error("Render() produced a blank image")
	}
}

// TestRender_Degenerate 测试零尺寸与非法输入
func TestRender_Degenerate(t *testing.T) {
	if _, err := Render(Box{}, nil); err != nil {
		t.Errorf("Render(zero box) error = %v", err)
	}
	if _, err := Render(Box{0, 10, 0}, nil); err != nil {
		t.Errorf("Render(vertical line) error = %v", err)
	}
	if _, err := Render(Box{-1, 1, 1}, nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Render(negative) error = %v, want ErrInvalidValue", err)
	}
	if _, err := Render(Box{1, 1, 1}, &Options{}); err == nil {
		t.Error("Render() with zero canvas should fail")
	}
}

// TestEncodePNG 测试 PNG 编码
func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, Box{12.70, 17.78, 1}, nil); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 320 {
		t.Errorf("decoded width = %d, want 320", img.Bounds().Dx())
	}
}
