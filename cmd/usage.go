package cmd

import (
	"BlueprintDock/internal/console"
	"BlueprintDock/internal/version"
	"fmt"
	"strings"
)

// PrintHelp prints usage information.
func PrintHelp() {
	fmt.Println(console.Parse(GetUsage()))
}

// GetUsage returns the usage text with semantic tags.
func GetUsage() string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}]", appCmd))
	printStr("")
	printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
	printStr("Normalizes the blueprint catalog index: drops invalid and duplicate")
	printStr("entries, sorts by id, and rewrites '{{_UsageFile_}}meta.json{{|-|}}' with stable formatting.")
	printStr("")
	printStr("Flags:")
	printStr("")
	printStr("{{_UsageCommand_}}-i --input{{|-|}} {{_UsageFile_}}<file>{{|-|}}")
	printStr("	Index file to read (default '{{_UsageFile_}}meta.json{{|-|}}')")
	printStr("{{_UsageCommand_}}-o --output{{|-|}} {{_UsageFile_}}<file>{{|-|}}")
	printStr("	File to write; defaults to the input file (in-place)")
	printStr("{{_UsageCommand_}}--backup{{|-|}} / {{_UsageCommand_}}--no-backup{{|-|}}")
	printStr("	Write (or suppress) a timestamped copy of the original file first")
	printStr("{{_UsageCommand_}}--no-schema-validation{{|-|}}")
	printStr("	Skip required-field checks on each entry")
	printStr("{{_UsageCommand_}}--check{{|-|}}")
	printStr("	Cross-check entries against the blueprint folders on disk")
	printStr("{{_UsageCommand_}}--diff{{|-|}}")
	printStr("	Show what the rewrite changes")
	printStr("{{_UsageCommand_}}--watch{{|-|}}")
	printStr("	Keep running and re-normalize whenever the index file changes")
	printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
	printStr("	Verbose")
	printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
	printStr("	Debug")
	printStr("{{_UsageCommand_}}-V --version{{|-|}}")
	printStr("	Show the tool and catalog versions")
	printStr("{{_UsageCommand_}}-h --help{{|-|}}")
	printStr("	Show this help")

	return sb.String()
}
