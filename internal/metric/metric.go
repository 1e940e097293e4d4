// Package metric converts inches to centimeters and renders fixed-point
// decimals.
package metric

import (
	"math"
	"math/big"
	"strings"
)

// CentimetersPerInch is the exact inch definition.
const CentimetersPerInch = 2.54

// Places is the number of decimals in every rendered value.
const Places = 2

// exactPrec holds any finite float64 scaled by a small power of ten, plus
// one half, without rounding.
const exactPrec = 2048

// ToCentimeters converts inches to centimeters.
func ToCentimeters(inches float64) float64 {
	return inches * CentimetersPerInch
}

// Centimeters converts inches and renders the result with two decimals.
func Centimeters(inches float64) string {
	return FormatFixed(ToCentimeters(inches), Places)
}

// FormatFixed renders v with exactly places decimals, trailing zeros kept.
//
// Rounding is half-up on the exact binary value of v, so 0.125 renders as
// "0.13" while 1.005 (stored as 1.00499999...) renders as "1.00".
func FormatFixed(v float64, places int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if places < 0 {
		places = 0
	}
	neg := v < 0
	if neg {
		v = -v
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	x := new(big.Float).SetPrec(exactPrec).SetFloat64(v)
	x.Mul(x, new(big.Float).SetPrec(exactPrec).SetInt(scale))
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	digits := n.String()
	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}
