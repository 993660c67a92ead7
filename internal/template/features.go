package template

import (
	"github.com/yuekcc/init-nodejs-project/internal/defs"
)

// Feature is an optional add-on that gates one template.
type Feature struct {
	Name     string // flag name and model key, e.g. "vue"
	Template string // output gated by this feature
	Usage    string // help text for the CLI flag
}

// Features lists the optional add-ons known to the catalog.
var Features = []Feature{
	{Name: "vue", Template: defs.ViteConfigJS, Usage: "add a Vue 3 + Vite setup (vite.config.js)"},
	{Name: "typescript", Template: defs.TSConfigJSON, Usage: "add a TypeScript setup (tsconfig.json)"},
}

// FeatureNames returns the names of all known features in declaration order.
func FeatureNames() []string {
	names := make([]string, len(Features))
	for i, f := range Features {
		names[i] = f.Name
	}
	return names
}
