package buffer

import "testing"

func TestTextBuffer_Offsets(t *testing.T) {
	tb := New()
	tb.Write("Size: ")
	if tb.ByteOffset() != 6 || tb.UTF16Offset() != 6 {
		t.Fatalf("offsets = (%d, %d), want (6, 6)", tb.ByteOffset(), tb.UTF16Offset())
	}
	tb.Write("5½")
	if tb.ByteOffset() != 9 {
		t.Errorf("ByteOffset() = %d, want 9", tb.ByteOffset())
	}
	if tb.UTF16Offset() != 8 {
		t.Errorf("UTF16Offset() = %d, want 8", tb.UTF16Offset())
	}
	if got := tb.String(); got != "Size: 5½" {
		t.Errorf("String() = %q", got)
	}
}

func TestTextBuffer_EmptyWrite(t *testing.T) {
	tb := New()
	if tb.String() != "" {
		t.Errorf("empty buffer String() = %q", tb.String())
	}
	tb.Write("")
	tb.Write("📦")
	if tb.UTF16Offset() != 2 {
		t.Errorf("UTF16Offset() = %d, want 2", tb.UTF16Offset())
	}
	if tb.ByteOffset() != 4 || tb.String() != "📦" {
		t.Errorf("after empty write: %d %q", tb.ByteOffset(), tb.String())
	}
}
