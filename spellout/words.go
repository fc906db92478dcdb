// Word tables for English number spelling.
package spellout

const (
	hundred  int64 = 100
	thousand int64 = 1_000

	wordZero    = "zero"
	wordMinus   = "minus"
	wordHundred = "hundred"
	wordAnd     = "and"
)

// ones covers 0–19. The 10–19 entries are the irregular teen words, selected
// through the decomposer's teen tag rather than composed from tens and units.
var ones = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused
// (a 1x remainder is a teen word, not "ten" plus a units word).
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest.
// The highest group of any int64 is below ten quintillion, so this table
// bounds every magnitude the speller can reach.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000_000_000, word: "quintillion"},
	{value: 1_000_000_000_000_000, word: "quadrillion"},
	{value: 1_000_000_000_000, word: "trillion"},
	{value: 1_000_000_000, word: "billion"},
	{value: 1_000_000, word: "million"},
	{value: 1_000, word: "thousand"},
}
