package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// semanticMap maps lower-cased semantic tag names to ANSI sequences.
// Messages use {{_Tag_}} markers and {{|-|}} for reset; see Parse.
var semanticMap = map[string]string{
	"applicationname":        CodeBold + CodeCyan,
	"version":                CodeCyan,
	"file":                   CodeGreen,
	"folder":                 CodeBlue,
	"id":                     CodeCyan,
	"name":                   CodeMagenta,
	"var":                    CodeMagenta,
	"branch":                 CodeYellow,
	"url":                    CodeUnderline + CodeBlue,
	"added":                  CodeGreen,
	"removed":                CodeRed,
	"usagecommand":           CodeYellow,
	"usageoption":            CodeCyan,
	"usagefile":              CodeGreen,
	"usercommand":            CodeYellow,
	"usercommanderror":       CodeRedBg + CodeWhite,
	"usercommanderrormarker": CodeRed,
}
