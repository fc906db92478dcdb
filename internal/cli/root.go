package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. The CLI either fully succeeds or fully fails; every failure
// (missing argument, invalid format, out-of-range value) maps to ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var rootCmd = &cobra.Command{
	Use:   "numword <integer>",
	Short: "Spell a signed 64-bit integer in English",
	Long: "Numword converts a base-10 signed 64-bit integer to its English " +
		"cardinal spelling, e.g. -110 becomes \"minus one hundred and ten\".",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	// Flag parsing is disabled so negative numbers ("-110") reach the
	// argument list instead of being rejected as unknown flags.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-h" || args[0] == "--help" {
			return cmd.Help()
		}
		text, err := spellArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, text)
		return nil
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitFailure
	}

	return ExitSuccess
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print numword version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "numword version %s\n", version)
	},
}
