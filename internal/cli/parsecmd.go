package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/numword/numword/spellout"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <words>...",
	Short: "Convert English cardinal text back to an integer",
	Long: "Parse converts English cardinal number text to its integer value, " +
		"e.g. \"minus twenty-one\" becomes -21. The words may be given as " +
		"separate arguments or as one quoted string.",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseWords(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, n)
		return nil
	},
}

// parseWords joins the argument list into one text and parses it.
func parseWords(args []string) (int64, error) {
	return spellout.Parse(strings.Join(args, " "))
}
