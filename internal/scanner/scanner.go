// Package scanner finds 2- and 3-part inch dimension groups ("5 x 7",
// "31 1/8 x 5½ x 2") in free text.
package scanner

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/riverfjs/metricify-go/internal/types"
	"github.com/riverfjs/metricify-go/internal/util"
)

// ErrScanStopped is returned when the regexp engine gives up part way.
var ErrScanStopped = errors.New("dimension scan stopped")

// space is ECMAScript \s. The default regexp2 \s also matches U+0085 and
// misses U+FEFF.
const space = util.SpaceClass

// numberPattern is one component. Alternation order matters: mixed
// fraction, whole number with glyph, decimal, integer.
const numberPattern = `([0-9]+` + space + `+[0-9]+/[0-9]+|[0-9]+[¼-¾⅐-⅞]|[0-9]+\.[0-9]+|[0-9]+)`

// delimiterPattern is the "x" between components.
const delimiterPattern = space + `*[xX]` + space + `*`

// dimensionPattern requires a double quote (after optional whitespace) or
// the absolute end of input to follow the group. The lookahead is not
// consumed.
//
// A group never starts inside a digit run: whenever a match could start
// at the second digit, one starts at the first. The lookbehind keeps the
// search linear on long digit runs.
var dimensionPattern = regexp2.MustCompile(`(?<![0-9])`+
	numberPattern+delimiterPattern+numberPattern+
	`(?:`+delimiterPattern+numberPattern+`)?`+
	`(?=`+space+`*"|\z)`, regexp2.None)

// continuation marks input that is followed by more content: it is never
// part of a match and defeats the end-of-input lookahead.
const continuation = '\uffff'

// Group is one matched dimension expression.
type Group struct {
	// Match is the matched text, delimiters and whitespace included.
	Match string
	// Components holds the 2 or 3 numeric substrings in order.
	Components []string
	// Span locates Match in the scanned text.
	Span types.Span
}

// Scan returns the non-overlapping groups of text, left to right.
func Scan(text string) ([]Group, error) {
	return ScanContinued(text, true)
}

// ScanContinued scans text that is either the whole input (final) or a
// piece followed by more content that is not scanned, such as markup. A
// group at the very end of a non-final piece is not accepted.
//
// If the engine fails the groups found so far are returned with an error
// that wraps ErrScanStopped and carries only the byte offset reached.
func ScanContinued(text string, final bool) ([]Group, error) {
	runes := []rune(text)
	offsets := util.NewOffsets(text)
	input := runes
	if !final {
		input = append(runes[:len(runes):len(runes)], continuation)
	}

	groups := make([]Group, 0)
	m, err := dimensionPattern.FindRunesMatch(input)
	for err == nil && m != nil {
		groups = append(groups, newGroup(m, offsets))
		m, err = dimensionPattern.FindNextMatch(m)
	}
	if err != nil {
		reached := 0
		if n := len(groups); n > 0 {
			reached = groups[n-1].Span.End
		}
		return groups, fmt.Errorf("%w at byte %d", ErrScanStopped, reached)
	}
	return groups, nil
}

func newGroup(m *regexp2.Match, offsets *util.Offsets) Group {
	components := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		components = append(components, g.String())
	}
	start, end := m.Index, m.Index+m.Length
	return Group{
		Match:      m.String(),
		Components: components,
		Span: types.Span{
			Start:      offsets.Byte(start),
			End:        offsets.Byte(end),
			UTF16Start: offsets.UTF16(start),
			UTF16End:   offsets.UTF16(end),
		},
	}
}
