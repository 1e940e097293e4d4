package util

import "unicode/utf8"

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += utf16Width(r)
	}
	return count
}

func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// Offsets maps rune indexes of a text to byte and UTF-16 offsets.
//
// regexp2 reports match positions in runes; callers slice Go strings by
// bytes and browser-side glue counts UTF-16 code units.
type Offsets struct {
	bytes []int
	utf16 []int
}

// NewOffsets builds the offset table for text. Entry i is the offset of
// rune i; the final entry is the total length.
func NewOffsets(text string) *Offsets {
	n := utf8.RuneCountInString(text)
	o := &Offsets{
		bytes: make([]int, 0, n+1),
		utf16: make([]int, 0, n+1),
	}
	cum := 0
	for i, r := range text {
		o.bytes = append(o.bytes, i)
		o.utf16 = append(o.utf16, cum)
		cum += utf16Width(r)
	}
	o.bytes = append(o.bytes, len(text))
	o.utf16 = append(o.utf16, cum)
	return o
}

// Byte returns the byte offset of rune index i.
func (o *Offsets) Byte(i int) int {
	return o.bytes[clampIndex(i, len(o.bytes))]
}

// UTF16 returns the UTF-16 offset of rune index i.
func (o *Offsets) UTF16(i int) int {
	return o.utf16[clampIndex(i, len(o.utf16))]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// SpaceClass is the character class of IsSpace in regexp2 syntax.
const SpaceClass = `[\t\n\v\f\r \u00A0\u1680\u2000-\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF]`

// IsSpace reports whether r is ECMAScript white space or a line
// terminator. Unlike unicode.IsSpace it excludes U+0085 and includes
// U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}
