package template

import (
	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

// Placeholder keys available to every template.
const (
	KeyAuthor      = "author"
	KeyThisYear    = "thisYear"
	KeyProjectName = "projectName"
	KeyPrivate     = "private"
	KeyNonPrivate  = "nonPrivate"
	KeyVersion     = "version"
)

// Model is the data a template is executed against. Each key maps to
// exactly one Settings field; feature names map to their flag state.
type Model map[string]any

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	features []Feature
}

// WithFeatures replaces the set of feature keys exposed to templates.
// Defaults to Features.
func WithFeatures(features []Feature) ModelOption {
	return func(c *modelConfig) {
		c.features = features
	}
}

// NewModel builds the placeholder model for s. Every known feature gets a
// key, false when the flag is absent, so templates may test any of them.
func NewModel(s models.Settings, opts ...ModelOption) Model {
	cfg := &modelConfig{features: Features}
	for _, opt := range opts {
		opt(cfg)
	}

	m := Model{
		KeyAuthor:      s.Author,
		KeyThisYear:    s.Year,
		KeyProjectName: s.ProjectName,
		KeyPrivate:     s.Private,
		KeyNonPrivate:  !s.Private,
		KeyVersion:     s.Version,
	}
	for _, f := range cfg.features {
		m[f.Name] = s.HasFeature(f.Name)
	}
	return m
}
