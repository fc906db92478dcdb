package spellout

import (
	"math"
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Spell(0)
			Spell(-42)
			Spell(43110)
			Spell(math.MinInt64)
			Parse("one hundred and ten")
			Parse("minus twenty-one")
		}()
	}

	wg.Wait()
}

// TestSpellBoundaryValues verifies Spell handles the int64 extremes without
// panicking, including the one value whose negation overflows.
func TestSpellBoundaryValues(t *testing.T) {
	values := []int64{
		math.MaxInt64,
		math.MinInt64,
		math.MinInt64 + 1,
		math.MaxInt64 - 1,
		1_000_000_000_000_000_000,
		-1_000_000_000_000_000_000,
	}

	for _, n := range values {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Spell(%d) panicked: %v", n, r)
				}
			}()
			_ = Spell(n)
		}()
	}
}

// TestParseMalformed verifies Parse handles malformed input gracefully.
func TestParseMalformed(t *testing.T) {
	malformed := []string{
		"",
		" ",
		"   ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		strings.Repeat("one ", 1000),
		"minus",
		"minus minus one", // double negative
		"and and and",
		"-",
		"---",
		"twenty-",
		"-one",
		"one-hundred-", // trailing hyphen part is empty
	}

	for _, input := range malformed {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", input, r)
				}
			}()
			_, _ = Parse(input)
		})
	}
}
