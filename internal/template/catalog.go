package template

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

// templateSuffix marks catalog entries; it is stripped from output names.
const templateSuffix = ".tmpl"

//go:embed all:templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the compiled-in template filesystem rooted at
// the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

// Catalog is a read-only mapping from output name to template body.
// It is built once and never modified afterwards.
type Catalog struct {
	fsys  fs.FS
	names []string
}

// NewCatalog indexes every top-level "<name>.tmpl" file of fsys.
// Files without the suffix and directories are ignored.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read template catalog: %w", err)
	}

	c := &Catalog{fsys: fsys}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), templateSuffix)
		if !ok || name == "" {
			continue
		}
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)
	return c, nil
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	return NewCatalog(fsys)
}

// Names returns the sorted output names of all templates.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Has reports whether the catalog contains the named template.
func (c *Catalog) Has(name string) bool {
	_, found := slices.BinarySearch(c.names, name)
	return found
}

// Body returns the raw template text for an output name.
func (c *Catalog) Body(name string) (string, error) {
	if !c.Has(name) {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	data, err := fs.ReadFile(c.fsys, name+templateSuffix)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return string(data), nil
}
