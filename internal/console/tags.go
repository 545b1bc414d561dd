package console

import (
	"fmt"
	"regexp"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct codes ({{|-|}} is reset)
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9:\-]+)\|\}\}`)

	// ansiRegex matches raw ANSI escape sequences for stripping
	ansiRegex = regexp.MustCompile(`\033\[[0-9;]*m`)
)

// Parse converts semantic and direct tags to ANSI escape sequences.
// When the output is not a terminal, all tags are stripped instead.
//   - {{_Tag_}} : semantic lookup -> ANSI
//   - {{|-|}}   : reset
func Parse(text string) string {
	if !IsTTY() {
		return Strip(text)
	}

	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{_" and "_}}"
		if code, ok := semanticMap[lower(content)]; ok {
			return code
		}
		// Unknown semantic tag - strip it
		return ""
	})

	text = directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{|" and "|}}"
		if content == "-" {
			return CodeReset
		}
		if code, ok := semanticMap[lower(content)]; ok {
			return code
		}
		return ""
	})

	return text
}

// Strip removes all semantic and direct tags from text, as well as ANSI
// escape sequences.
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return ansiRegex.ReplaceAllString(text, "")
}

// Sprintf formats according to a format specifier and returns the string
// with tags parsed.
func Sprintf(format string, a ...any) string {
	return Parse(fmt.Sprintf(format, a...))
}

// Println prints a line with tags parsed.
func Println(a ...any) {
	fmt.Println(Parse(fmt.Sprint(a...)))
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
