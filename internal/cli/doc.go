// Package cli wires together the Cobra command tree for the numword binary.
//
// The root command spells a single integer argument; the parse subcommand
// performs the inverse conversion. Both surface failures as one-line
// diagnostics with a nonzero exit code.
package cli
