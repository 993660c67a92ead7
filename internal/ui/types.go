// Package ui provides the terminal interaction layer: headless detection,
// progress reporting, the interactive settings form and markdown output.
package ui

import "errors"

// Sentinel errors for UI operations.
var (
	// ErrHeadless indicates an interactive component was requested
	// without a terminal attached.
	ErrHeadless = errors.New("ui: interactive mode requires a terminal")

	// ErrCancelled indicates the user aborted an interactive form.
	ErrCancelled = errors.New("ui: cancelled by user")
)

// FileProgress follows the files of one scaffolding run. Planned is called
// once before the first write; Done is called once at the end, also after a
// failed write.
type FileProgress interface {
	Planned(paths []string)
	Written(path string)
	Done()
}
