package fraction

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fractionSlash is U+2044, which NFKC places between the numerator and
// denominator of a vulgar fraction ("½" -> "1⁄2").
const fractionSlash = "⁄"

// glyphValues maps every vulgar fraction glyph to its exact value.
var glyphValues = map[rune]float64{
	'¼': 1.0 / 4,
	'½': 1.0 / 2,
	'¾': 3.0 / 4,
	'⅐': 1.0 / 7,
	'⅑': 1.0 / 9,
	'⅒': 1.0 / 10,
	'⅓': 1.0 / 3,
	'⅔': 2.0 / 3,
	'⅕': 1.0 / 5,
	'⅖': 2.0 / 5,
	'⅗': 3.0 / 5,
	'⅘': 4.0 / 5,
	'⅙': 1.0 / 6,
	'⅚': 5.0 / 6,
	'⅛': 1.0 / 8,
	'⅜': 3.0 / 8,
	'⅝': 5.0 / 8,
	'⅞': 7.0 / 8,
}

// glyphOrder is the table order, used for listing.
var glyphOrder = []rune{
	'¼', '½', '¾', '⅐', '⅑', '⅒', '⅓', '⅔', '⅕',
	'⅖', '⅗', '⅘', '⅙', '⅚', '⅛', '⅜', '⅝', '⅞',
}

// IsGlyph reports whether r lies in the vulgar fraction ranges accepted by
// the grammar (U+00BC–U+00BE, U+2150–U+215E).
func IsGlyph(r rune) bool {
	return (r >= 0x00BC && r <= 0x00BE) || (r >= 0x2150 && r <= 0x215E)
}

// GlyphValue returns the value of a fraction glyph. Unknown glyphs yield 0.
func GlyphValue(r rune) float64 {
	return glyphValues[r]
}

// Glyphs returns all known fraction glyphs in table order.
func Glyphs() []rune {
	out := make([]rune, len(glyphOrder))
	copy(out, glyphOrder)
	return out
}

// GlyphRational returns the numerator and denominator of a fraction glyph
// from its compatibility decomposition.
func GlyphRational(r rune) (num, den int, ok bool) {
	decomposed := norm.NFKC.String(string(r))
	parts := strings.Split(decomposed, fractionSlash)
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.Atoi(parts[1])
	if err != nil || den == 0 {
		return 0, 0, false
	}
	return num, den, true
}
