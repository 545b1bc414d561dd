// metasort is the minimal form of the index normalizer:
//
//	metasort [--backup] [--help|-h] [<file>]
//
// The positional argument replaces the default meta.json path for both read
// and write. It shares the processing contract with the bpd binary.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"BlueprintDock/internal/logger"
	"BlueprintDock/internal/meta"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage() {
	fmt.Println("Usage: metasort [--backup] [--help|-h] [<file>]")
	fmt.Println()
	fmt.Println("Dedupes, validates and sorts a blueprint index file (default meta.json).")
	fmt.Println()
	fmt.Println("  --backup    Write a timestamped copy of the original file first")
	fmt.Println("  -h --help   Show this help")
}

func run(args []string) (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()
	defer logger.Cleanup()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
	}()

	opts := meta.DefaultOptions()
	for _, a := range args {
		switch a {
		case "--backup":
			opts.CreateBackup = true
		case "--help", "-h":
			usage()
			return 0
		default:
			if strings.HasPrefix(a, "-") {
				fmt.Fprintf(os.Stderr, "metasort: invalid option '%s'\n\n", a)
				usage()
				return 1
			}
			opts.InputFile = a
		}
	}

	sum, err := meta.NewProcessor(opts).Process(ctx)
	if err != nil {
		logger.Fatal(ctx, err.Error())
	}

	sum.Log(ctx)
	return 0
}
