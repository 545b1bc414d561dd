package cmd

import (
	"github.com/spf13/pflag"
)

// NewFlagSet defines the pflags used for argument validation and help.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bpd", pflag.ContinueOnError)
	fs.SortFlags = false
	// pflag's default usage output is replaced by the tagged usage text
	fs.Usage = func() {}

	// Input/Output
	fs.StringP("input", "i", "", "Index file to read")
	fs.StringP("output", "o", "", "File to write (defaults to the input file)")
	fs.Bool("backup", false, "Write a timestamped backup before overwriting")
	fs.Bool("no-backup", false, "Do not write a backup (overrides config)")

	// Processing
	fs.Bool("no-schema-validation", false, "Skip required-field checks")
	fs.Bool("check", false, "Cross-check index entries against blueprint folders")
	fs.Bool("diff", false, "Show what the rewrite changes")
	fs.Bool("watch", false, "Re-run whenever the index file changes")

	// Modifiers
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.BoolP("debug", "x", false, "Debug output")

	// Info
	fs.BoolP("version", "V", false, "Show version")
	fs.BoolP("help", "h", false, "Show help")

	return fs
}
