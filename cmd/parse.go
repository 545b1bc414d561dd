package cmd

import (
	"BlueprintDock/internal/version"
	"fmt"
	"strings"
)

// ParseError wraps argument parsing errors to provide rich output pointing
// at the offending argument.
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred, -1 if unknown
	Message string   // The specific error message
}

func (e *ParseError) Error() string {
	indent := "   "

	// Build command line string, highlighting the failing argument
	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName)}
	for i, str := range e.Args {
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n", indent, cmdLineStr)

	if e.Index >= 0 && e.Index < len(e.Args) {
		// Caret line under the failing argument
		caretOffset := len(indent) + 1 + len(version.CommandName) + 1
		for i := 0; i < e.Index; i++ {
			caretOffset += len(e.Args[i]) + 1
		}
		out += strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}\n"
	}

	out += fmt.Sprintf("\n%s%s\n", indent, e.Message)
	out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	return out
}

// Options is the parsed command line of the configurable form.
type Options struct {
	Input    string
	Output   string
	Backup   bool
	NoBackup bool
	NoSchema bool
	Check    bool
	Diff     bool
	Watch    bool
	Verbose  bool
	Debug    bool

	ShowVersion bool
	ShowHelp    bool
}

// Parse parses the raw command line arguments into Options. The configurable
// form takes no positional arguments.
func Parse(args []string) (*Options, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, &ParseError{Args: args, Index: findBadArg(args, err.Error()), Message: err.Error()}
	}

	if fs.NArg() > 0 {
		bad := fs.Args()[0]
		idx := -1
		for i, a := range args {
			if a == bad {
				idx = i
				break
			}
		}
		return nil, &ParseError{Args: args, Index: idx, Message: fmt.Sprintf("invalid option '{{_UserCommand_}}%s{{|-|}}'", bad)}
	}

	opts := &Options{}
	opts.Input, _ = fs.GetString("input")
	opts.Output, _ = fs.GetString("output")
	opts.Backup, _ = fs.GetBool("backup")
	opts.NoBackup, _ = fs.GetBool("no-backup")
	opts.NoSchema, _ = fs.GetBool("no-schema-validation")
	opts.Check, _ = fs.GetBool("check")
	opts.Diff, _ = fs.GetBool("diff")
	opts.Watch, _ = fs.GetBool("watch")
	opts.Verbose, _ = fs.GetBool("verbose")
	opts.Debug, _ = fs.GetBool("debug")
	opts.ShowVersion, _ = fs.GetBool("version")
	opts.ShowHelp, _ = fs.GetBool("help")
	return opts, nil
}

// findBadArg locates the argument mentioned in a pflag error message so the
// caret can point at it. Returns -1 when it cannot tell.
func findBadArg(args []string, errMsg string) int {
	for i, a := range args {
		trimmed := strings.TrimLeft(a, "-")
		if trimmed == "" {
			continue
		}
		if strings.Contains(errMsg, trimmed) {
			return i
		}
	}
	return -1
}
