package config

import (
	"os"
	"path/filepath"

	"github.com/yuekcc/init-nodejs-project/internal/defs"
	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

// Default values used when no flag, environment variable or config file
// provides one.
const (
	DefaultAuthor  = "yuekcc"
	DefaultVersion = models.DefaultVersion
)

// Keys of the layered values managed by viper.
const (
	KeyAuthor  = "author"
	KeyVersion = "version"
)

// Flag names bound to the layered keys.
const (
	FlagAuthor  = "author"
	FlagVersion = "pkg-version"
)

// Value sources reported by Resolver.Source.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceConfig  = "config"
	SourceDefault = "default"
)

// DefaultConfigFile returns the user defaults file path,
// $XDG_CONFIG_HOME/init-nodejs-project/config.yaml on Linux. It returns ""
// when no user config directory can be determined.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, defs.AppName, defs.ConfigYAML)
}

// envFor returns the environment variable bound to a layered key.
func envFor(key string) string {
	switch key {
	case KeyAuthor:
		return defs.EnvAuthor
	case KeyVersion:
		return defs.EnvVersion
	}
	return ""
}

// flagFor returns the flag bound to a layered key.
func flagFor(key string) string {
	switch key {
	case KeyAuthor:
		return FlagAuthor
	case KeyVersion:
		return FlagVersion
	}
	return ""
}
