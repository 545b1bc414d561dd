package console

import "os"

// TTYOverride forces the TTY decision for tests: 0 = auto, 1 = yes, -1 = no.
var TTYOverride int

// IsTTY reports whether stderr is attached to a terminal.
func IsTTY() bool {
	switch TTYOverride {
	case 1:
		return true
	case -1:
		return false
	}
	stat, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
