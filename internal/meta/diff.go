package meta

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Preview renders a line-based preview of the rewrite with semantic color
// tags on added and removed lines.
func Preview(before, after []byte) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		text := strings.TrimRight(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sb.WriteString("{{_Added_}}+ " + line + "{{|-|}}\n")
			case diffmatchpatch.DiffDelete:
				sb.WriteString("{{_Removed_}}- " + line + "{{|-|}}\n")
			default:
				sb.WriteString("  " + line + "\n")
			}
		}
	}
	return sb.String()
}
