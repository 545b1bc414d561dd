package meta

import "errors"

// Fatal conditions. All of them abort processing before any file is written.
// Non-fatal conditions (invalid records, duplicates, schema violations) are
// accumulated in the Summary instead.
var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrInvalidJSON reports that the input content does not parse as JSON.
	ErrInvalidJSON = errors.New("input is not valid JSON")

	// ErrInvalidShape reports that the parsed top-level value is not an array.
	ErrInvalidShape = errors.New("top-level value is not an array")
)
