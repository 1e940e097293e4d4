package util

import "testing"

// TestUTF16Len 测试 UTF-16 长度计算
func TestUTF16Len(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"5x7", 3},
		{"5½", 2},
		{"⅞", 1},
		{"📦 5x7", 6},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.text); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

// TestOffsets_Mixed 测试多字节字符的偏移映射
func TestOffsets_Mixed(t *testing.T) {
	// "a½📦b": a=1 byte, ½=2 bytes, 📦=4 bytes (2 UTF-16 units), b=1 byte
	o := NewOffsets("a½📦b")
	wantBytes := []int{0, 1, 3, 7, 8}
	wantUTF16 := []int{0, 1, 2, 4, 5}
	for i := range wantBytes {
		if got := o.Byte(i); got != wantBytes[i] {
			t.Errorf("Byte(%d) = %d, want %d", i, got, wantBytes[i])
		}
		if got := o.UTF16(i); got != wantUTF16[i] {
			t.Errorf("UTF16(%d) = %d, want %d", i, got, wantUTF16[i])
		}
	}
}

// TestOffsets_Clamp 测试越界索引
func TestOffsets_Clamp(t *testing.T) {
	o := NewOffsets("abc")
	if got := o.Byte(10); got != 3 {
		t.Errorf("Byte(10) = %d, want 3", got)
	}
	if got := o.Byte(-1); got != 0 {
		t.Errorf("Byte(-1) = %d, want 0", got)
	}
	empty := NewOffsets("")
	if got := empty.UTF16(0); got != 0 {
		t.Errorf("UTF16(0) on empty = %d, want 0", got)
	}
}

// TestIsSpace 测试空白字符集合
func TestIsSpace(t *testing.T) {
	spaces := []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u1680', '\u2000', '\u200a', '\u2028', '\u3000', '\ufeff'}
	for _, r := range spaces {
		if !IsSpace(r) {
			t.Errorf("IsSpace(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'\u0085', '\u200b', '\u180e', 'x', '0'} {
		if IsSpace(r) {
			t.Errorf("IsSpace(%U) = true, want false", r)
		}
	}
}
