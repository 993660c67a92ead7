// Package project orchestrates one scaffolding run: it creates the output
// directory when asked to, renders the template plan, deploys it and
// optionally initializes a git repository.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrIO indicates the output directory or repository could not be created.
	ErrIO = errors.New("project: filesystem operation failed")

	// ErrNotDirectory indicates the output path exists but is not a directory.
	ErrNotDirectory = errors.New("output path is not a directory")
)
