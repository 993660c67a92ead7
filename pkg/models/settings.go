package models

import (
	"slices"
	"strings"
)

// DefaultVersion is the package version written when none is configured.
const DefaultVersion = "0.1.0"

// Settings is the resolved configuration of a single scaffolding run.
// Values are passed by copy; Features is kept sorted and deduplicated and
// must not be modified in place.
type Settings struct {
	Author      string   `yaml:"author" json:"author"`
	Private     bool     `yaml:"private" json:"private"`
	ProjectName string   `yaml:"project_name" json:"project_name"`
	Year        int      `yaml:"year" json:"year"`
	Version     string   `yaml:"version" json:"version"`
	Features    []string `yaml:"features" json:"features"`
}

// NewSettings builds a Settings value. Feature names are lowercased,
// deduplicated and sorted; empty names are dropped.
func NewSettings(author string, private bool, projectName string, year int, version string, features ...string) Settings {
	if version == "" {
		version = DefaultVersion
	}
	return Settings{
		Author:      author,
		Private:     private,
		ProjectName: projectName,
		Year:        year,
		Version:     version,
		Features:    normalizeFeatures(features),
	}
}

// HasFeature reports whether the named feature flag is set.
func (s Settings) HasFeature(name string) bool {
	_, found := slices.BinarySearch(s.Features, strings.ToLower(name))
	return found
}

func normalizeFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
