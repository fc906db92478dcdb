package cli

import (
	"fmt"
	"strconv"

	"github.com/numword/numword/spellout"
)

// spellArg converts a single command-line argument to its English spelling.
// The argument must be a base-10 signed 64-bit integer; anything else,
// including out-of-range values, is an invalid-format error.
func spellArg(arg string) (string, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return "", fmt.Errorf("not a base-10 64-bit integer: %q", arg)
	}
	return spellout.Spell(n), nil
}
