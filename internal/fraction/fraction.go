// Package fraction parses a single dimension component: an integer, a
// decimal, a mixed fraction ("31 1/8") or a whole number followed by a
// vulgar fraction glyph ("5½").
package fraction

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/metricify-go/internal/util"
)

// Kind identifies which grammar produced a Token.
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindDecimal
	// KindGlyph is a bare glyph. Tokenize never produces it: a glyph
	// without a leading whole number does not parse.
	KindGlyph
	KindMixedFraction
	KindMixedGlyph
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindGlyph:
		return "glyph"
	case KindMixedFraction:
		return "mixed-fraction"
	case KindMixedGlyph:
		return "mixed-glyph"
	default:
		return "invalid"
	}
}

// Token is one parsed dimension component.
type Token struct {
	Kind        Kind
	Whole       float64
	Numerator   float64
	Denominator float64
	Glyph       rune
	// Number holds the value of KindInteger and KindDecimal tokens.
	Number float64
}

// Value returns the decimal value of the token.
//
// A zero denominator yields the whole part alone, and an unknown glyph
// counts as 0.
func (t Token) Value() float64 {
	switch t.Kind {
	case KindInteger, KindDecimal:
		return t.Number
	case KindGlyph:
		return GlyphValue(t.Glyph)
	case KindMixedFraction:
		if t.Denominator == 0 {
			return t.Whole
		}
		return t.Whole + t.Numerator/t.Denominator
	case KindMixedGlyph:
		return t.Whole + GlyphValue(t.Glyph)
	default:
		return 0
	}
}

// String renders the token in canonical "whole num/den" form.
func (t Token) String() string {
	switch t.Kind {
	case KindInteger, KindDecimal:
		return formatNumber(t.Number)
	case KindMixedFraction:
		return formatNumber(t.Whole) + " " + formatNumber(t.Numerator) + "/" + formatNumber(t.Denominator)
	case KindGlyph, KindMixedGlyph:
		num, den, ok := GlyphRational(t.Glyph)
		if !ok {
			return formatNumber(t.Whole)
		}
		frac := strconv.Itoa(num) + "/" + strconv.Itoa(den)
		if t.Kind == KindGlyph {
			return frac
		}
		return formatNumber(t.Whole) + " " + frac
	default:
		return ""
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tokenize classifies s. Grammars are tried in order: mixed fraction,
// whole number with glyph, then a plain decimal or integer.
func Tokenize(s string) (Token, bool) {
	if tok, ok := tokenizeMixedFraction(s); ok {
		return tok, true
	}
	if tok, ok := tokenizeMixedGlyph(s); ok {
		return tok, true
	}
	return tokenizeNumber(s)
}

// Parse returns the decimal value of s, or false when s matches none of
// the grammars or its value is not finite.
//
// The whole token must parse: "5abc" fails instead of reading as 5, and a
// digit run too long for float64 fails instead of becoming +Inf. Either
// way the group is left unconverted and logged.
func Parse(s string) (float64, bool) {
	tok, ok := Tokenize(s)
	if !ok {
		return 0, false
	}
	v := tok.Value()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// tokenizeMixedFraction matches `^\d+\s+\d+/\d+$`.
func tokenizeMixedFraction(s string) (Token, bool) {
	whole, rest := leadingDigits(s)
	if whole == "" {
		return Token{}, false
	}
	trimmed := strings.TrimLeftFunc(rest, util.IsSpace)
	if len(trimmed) == len(rest) {
		return Token{}, false
	}
	num, rest := leadingDigits(trimmed)
	if num == "" || !strings.HasPrefix(rest, "/") {
		return Token{}, false
	}
	den, rest := leadingDigits(rest[1:])
	if den == "" || rest != "" {
		return Token{}, false
	}
	return Token{
		Kind:        KindMixedFraction,
		Whole:       digitsValue(whole),
		Numerator:   digitsValue(num),
		Denominator: digitsValue(den),
	}, true
}

// tokenizeMixedGlyph matches `^\d+<glyph>$`.
func tokenizeMixedGlyph(s string) (Token, bool) {
	whole, rest := leadingDigits(s)
	if whole == "" {
		return Token{}, false
	}
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 || size != len(rest) || !IsGlyph(r) {
		return Token{}, false
	}
	return Token{
		Kind:  KindMixedGlyph,
		Whole: digitsValue(whole),
		Glyph: r,
	}, true
}

// tokenizeNumber accepts surrounding whitespace around `\d+(\.\d*)?` or
// `\.\d+`. Signs and exponents are rejected.
func tokenizeNumber(s string) (Token, bool) {
	s = strings.TrimFunc(s, util.IsSpace)
	intPart, rest := leadingDigits(s)
	kind := KindInteger
	if strings.HasPrefix(rest, ".") {
		var fracPart string
		fracPart, rest = leadingDigits(rest[1:])
		if intPart == "" && fracPart == "" {
			return Token{}, false
		}
		kind = KindDecimal
	} else if intPart == "" {
		return Token{}, false
	}
	if rest != "" {
		return Token{}, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Kind: kind, Number: v}, true
}

// leadingDigits splits s after its run of ASCII digits.
func leadingDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// digitsValue converts a run of ASCII digits. Runs too long for a float64
// become +Inf, which Parse rejects.
func digitsValue(digits string) float64 {
	v, _ := strconv.ParseFloat(digits, 64)
	return v
}
