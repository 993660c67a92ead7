package template

import (
	"fmt"

	"github.com/yuekcc/init-nodejs-project/internal/defs"
	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

// SkipRule omits one template when its predicate holds.
type SkipRule struct {
	Template string
	Reason   string
	Skip     func(models.Settings) bool
}

// Skipped records a template omitted from a run.
type Skipped struct {
	Template string
	Reason   string
}

// DefaultRules returns the skip rules of the built-in catalog: the license
// is dropped for private packages, and each feature template is dropped
// unless its feature is enabled.
func DefaultRules() []SkipRule {
	rules := []SkipRule{
		{
			Template: defs.License,
			Reason:   "private package",
			Skip:     func(s models.Settings) bool { return s.Private },
		},
	}
	for _, f := range Features {
		rules = append(rules, FeatureRule(f))
	}
	return rules
}

// FeatureRule skips f.Template unless f is enabled.
func FeatureRule(f Feature) SkipRule {
	name := f.Name
	return SkipRule{
		Template: f.Template,
		Reason:   fmt.Sprintf("feature %q not enabled", name),
		Skip:     func(s models.Settings) bool { return !s.HasFeature(name) },
	}
}

// Evaluate returns the first matching rule for the template, in rule order.
func Evaluate(rules []SkipRule, s models.Settings, name string) (SkipRule, bool) {
	for _, r := range rules {
		if r.Template == name && r.Skip(s) {
			return r, true
		}
	}
	return SkipRule{}, false
}
