// Unexported conversion from int64 to English cardinal text.
package spellout

import (
	"fmt"
	"math"
	"strings"
)

const growSpell = 96 // estimated bytes for a full spelling

// digitGroup is the decomposed form of one three-digit group.
// When teen is set the remainder is 10–19: units holds the 0–9 offset into
// the teen words and tens is unused. Otherwise tens holds the tens digit
// (0 or 2–9) and units the units digit.
type digitGroup struct {
	hundreds int
	teen     bool
	tens     int
	units    int
}

// decompose splits n into hundreds, tens and units digits, tagging the
// irregular 10–19 range. Callers must ensure 0 <= n <= 999.
func decompose(n int64) digitGroup {
	g := digitGroup{hundreds: int(n / hundred)}
	r := int(n % hundred)
	switch {
	case r >= 20:
		g.tens = r / 10
		g.units = r % 10
	case r >= 10:
		g.teen = true
		g.units = r - 10
	default:
		g.units = r
	}
	return g
}

// writeGroup writes a nonzero decomposed group as English text into b.
// An all-zero group writes nothing.
func writeGroup(b *strings.Builder, g digitGroup) {
	if g.hundreds != 0 {
		b.WriteString(ones[g.hundreds])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if g.teen || g.tens != 0 || g.units != 0 {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
			b.WriteByte(' ')
		}
	}

	switch {
	case g.teen:
		b.WriteString(ones[10+g.units])
	case g.tens != 0:
		b.WriteString(tens[g.tens])
		if g.units != 0 {
			b.WriteByte('-')
			b.WriteString(ones[g.units])
		}
	case g.units != 0:
		b.WriteString(ones[g.units])
	}
}

// spell converts an int64 to English cardinal text.
func spell(n int64) string {
	if n == 0 {
		return wordZero
	}

	var b strings.Builder
	b.Grow(growSpell)

	var carry int64
	if n < 0 {
		b.WriteString(wordMinus)
		if n == math.MinInt64 {
			// -n would overflow. Spell MaxInt64 instead and add the missing
			// one to the lowest group after the loop; MaxInt64 ends in 807,
			// so the carry cannot ripple into the thousands group.
			n = math.MaxInt64
			carry = 1
		} else {
			n = -n
		}
	}

	for _, mag := range magnitudes {
		count := n / mag.value
		n %= mag.value
		if count == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(&b, decompose(count))
		b.WriteByte(' ')
		b.WriteString(mag.word)
	}

	// The smallest table entry is one thousand, so the residue is a single
	// group. Anything larger means the magnitude table was exhausted.
	if n >= thousand {
		panic(fmt.Sprintf("spellout: residue %d after magnitude loop", n))
	}

	n += carry
	if n > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(&b, decompose(n))
	}

	return b.String()
}
