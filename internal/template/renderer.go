package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"text/template"
	"text/template/parse"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	"jsonEscape": jsonEscape,
}

// jsonEscape escapes s for embedding inside a JSON string literal. HTML
// characters are kept literal so "Alice <alice@example.com>" stays readable.
func jsonEscape(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	b := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return string(b[1 : len(b)-1])
}

// unexpandedTokenPattern detects placeholder syntax left in the literal text
// of a template. Matches ${VAR} and {{VAR}} / {{.VAR}}.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders catalog templates with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrMissingTemplateKey if a placeholder has no value and
	// ErrUnexpandedToken if the template text holds foreign placeholder syntax.
	Render(name string, data any) ([]byte, error)
}

type renderer struct {
	catalog *Catalog
}

// NewRenderer creates a Renderer backed by the given catalog.
func NewRenderer(c *Catalog) Renderer {
	return &renderer{catalog: c}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(name string, data any) ([]byte, error) {
	body, err := r.catalog.Body(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrTemplate, name, err)
	}

	// Only literal text is checked; substituted values are user data.
	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		if tok := findLiteralToken(t.Tree.Root); tok != "" {
			return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, tok, name)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.Bytes(), nil
}

// findLiteralToken returns the first unexpanded token in the text nodes
// under n, or "".
func findLiteralToken(n parse.Node) string {
	switch n := n.(type) {
	case *parse.TextNode:
		return string(unexpandedTokenPattern.Find(n.Text))
	case *parse.ListNode:
		if n == nil {
			return ""
		}
		for _, child := range n.Nodes {
			if tok := findLiteralToken(child); tok != "" {
				return tok
			}
		}
	case *parse.IfNode:
		return findBranchToken(&n.BranchNode)
	case *parse.RangeNode:
		return findBranchToken(&n.BranchNode)
	case *parse.WithNode:
		return findBranchToken(&n.BranchNode)
	}
	return ""
}

func findBranchToken(b *parse.BranchNode) string {
	if tok := findLiteralToken(b.List); tok != "" {
		return tok
	}
	if b.ElseList != nil {
		return findLiteralToken(b.ElseList)
	}
	return ""
}
