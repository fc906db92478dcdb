// Text-to-number parsing for English cardinal text.
package spellout

import (
	"fmt"
	"math"
	"strings"
)

// minMagnitude is the magnitude of math.MinInt64, one beyond math.MaxInt64.
// Accumulation runs unsigned so that the spelling of MinInt64 parses back.
const minMagnitude = uint64(math.MaxInt64) + 1

// wordValues maps each English cardinal word to its numeric value.
// Built at package level to avoid repeated allocation on every parse call.
var wordValues = map[string]uint64{
	"zero":        0,
	"one":         1,
	"two":         2,
	"three":       3,
	"four":        4,
	"five":        5,
	"six":         6,
	"seven":       7,
	"eight":       8,
	"nine":        9,
	"ten":         10,
	"eleven":      11,
	"twelve":      12,
	"thirteen":    13,
	"fourteen":    14,
	"fifteen":     15,
	"sixteen":     16,
	"seventeen":   17,
	"eighteen":    18,
	"nineteen":    19,
	"twenty":      20,
	"thirty":      30,
	"forty":       40,
	"fifty":       50,
	"sixty":       60,
	"seventy":     70,
	"eighty":      80,
	"ninety":      90,
	"hundred":     100,
	"thousand":    1_000,
	"million":     1_000_000,
	"billion":     1_000_000_000,
	"trillion":    1_000_000_000_000,
	"quadrillion": 1_000_000_000_000_000,
	"quintillion": 1_000_000_000_000_000_000,
}

// parse converts English cardinal number text to int64.
func parse(s string) (int64, error) {
	// Normalize case and whitespace, then break hyphenated compounds
	// ("twenty-one") into their parts.
	s = strings.ToLower(strings.TrimSpace(s))
	var tokens []string
	for _, field := range strings.Fields(s) {
		tokens = append(tokens, strings.Split(field, "-")...)
	}

	if len(tokens) == 0 {
		return 0, fmt.Errorf("spellout: empty input")
	}

	// Detect optional negative prefix.
	negative := false
	if tokens[0] == wordMinus {
		negative = true
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return 0, fmt.Errorf("spellout: empty input after %q", wordMinus)
		}
	}

	// Handle lone "zero" before entering the general loop.
	if len(tokens) == 1 && tokens[0] == wordZero {
		return 0, nil
	}

	var (
		total uint64 // sum of fully resolved magnitude groups
		group uint64 // 0–999 accumulator for the group under construction
		seen  bool   // at least one number word consumed
	)

	for _, tok := range tokens {
		// "and" is a connective, not a value.
		if tok == wordAnd {
			continue
		}

		val, ok := wordValues[tok]
		if !ok {
			return 0, fmt.Errorf("spellout: unknown word %q", tok)
		}
		seen = true

		switch {
		case val == 0:
			// "zero" makes no sense inside a compound number.
			return 0, fmt.Errorf("spellout: unexpected zero in compound")

		case val < uint64(hundred):
			// Units, teen or tens word — accumulate into the current group.
			group += val

		case val == uint64(hundred):
			// "hundred" multiplies whatever precedes it within the group.
			// If nothing precedes it, treat as implicit "one hundred".
			if group == 0 {
				group = 1
			}
			if group > minMagnitude/val {
				return 0, fmt.Errorf("spellout: out of range")
			}
			group *= val

		default:
			// Magnitude word (thousand, million, …).
			// If nothing precedes it, treat as implicit "one thousand" etc.
			if group == 0 {
				group = 1
			}
			// Overflow-checked multiplication and accumulation.
			if group > minMagnitude/val {
				return 0, fmt.Errorf("spellout: out of range")
			}
			product := group * val
			if total > minMagnitude-product {
				return 0, fmt.Errorf("spellout: out of range")
			}
			total += product
			group = 0
		}
	}

	if !seen {
		return 0, fmt.Errorf("spellout: no number words in input")
	}
	if total > minMagnitude-group {
		return 0, fmt.Errorf("spellout: out of range")
	}
	total += group

	if negative {
		if total == minMagnitude {
			return math.MinInt64, nil
		}
		return -int64(total), nil
	}
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("spellout: out of range")
	}
	return int64(total), nil
}
