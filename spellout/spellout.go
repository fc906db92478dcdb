// Package spellout converts between signed 64-bit integers and their English
// cardinal spelling.
//
// The package provides conversion in both directions:
//
//   - Spell turns an int64 into cardinal English text.
//   - Parse turns English cardinal text back into an int64.
//
// Spell is total over the int64 domain: every value has a spelling, including
// math.MinInt64, whose magnitude has no positive int64 counterpart. "and" is
// inserted British-style after the hundreds word ("one hundred and ten").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - English only.
//   - Cardinal forms only; ordinal text is neither produced nor parsed.
//   - Whole numbers only; no fractional or arbitrary-precision input.
package spellout

import "fmt"

// Spell returns the English cardinal spelling of n.
// Zero returns "zero". Negative numbers are prefixed with "minus".
func Spell(n int64) string {
	return spell(n)
}

// Parse converts English cardinal number text to an integer.
// Input is whitespace-normalized and case-insensitive. "and" connectives and
// hyphenated compounds ("twenty-one") are accepted, as are implicit-one forms
// ("hundred and five" for 105).
//
// Returns an error for empty, unparseable, or out-of-range input.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("spellout: empty input")
	}
	return parse(s)
}
