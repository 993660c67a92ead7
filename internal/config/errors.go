// Package config resolves the settings of a scaffolding run from command
// line flags, the environment, an optional YAML defaults file and the
// working directory.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrConfiguration indicates the run settings could not be resolved:
	// the working directory or its name is unusable, or a value is invalid.
	ErrConfiguration = errors.New("config: cannot resolve settings")
)
