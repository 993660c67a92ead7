package template

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

// Output is one rendered file: its path relative to the output directory
// and its final contents.
type Output struct {
	Path     string
	Contents []byte
}

// Plan is the result of rendering a catalog for one Settings value.
type Plan struct {
	Outputs []Output
	Skipped []Skipped
}

// Paths returns the output paths in plan order.
func (p *Plan) Paths() []string {
	paths := make([]string, len(p.Outputs))
	for i, o := range p.Outputs {
		paths[i] = o.Path
	}
	return paths
}

// Planner decides which templates apply and renders them.
type Planner struct {
	catalog  *Catalog
	renderer Renderer
	rules    []SkipRule
	logger   *slog.Logger
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithRules replaces the default skip rules.
func WithRules(rules []SkipRule) PlannerOption {
	return func(p *Planner) {
		p.rules = rules
	}
}

// WithRenderer replaces the default strict renderer.
func WithRenderer(r Renderer) PlannerOption {
	return func(p *Planner) {
		p.renderer = r
	}
}

// WithLogger sets the logger used for skip and render events.
func WithLogger(logger *slog.Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner creates a Planner over the catalog with DefaultRules.
func NewPlanner(c *Catalog, opts ...PlannerOption) *Planner {
	p := &Planner{
		catalog:  c,
		renderer: NewRenderer(c),
		rules:    DefaultRules(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan renders every non-skipped template of the catalog, in name order.
// The first rendering or validation failure aborts the whole plan.
func (p *Planner) Plan(ctx context.Context, s models.Settings, opts ...ModelOption) (*Plan, error) {
	model := NewModel(s, opts...)
	plan := &Plan{}

	for _, name := range p.catalog.Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if rule, skip := Evaluate(p.rules, s, name); skip {
			p.logger.Debug("template skipped", "template", name, "reason", rule.Reason)
			plan.Skipped = append(plan.Skipped, Skipped{Template: name, Reason: rule.Reason})
			continue
		}

		contents, err := p.renderer.Render(name, model)
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", name, err)
		}
		if err := ValidateOutput(name, contents); err != nil {
			return nil, fmt.Errorf("render %q: %w", name, err)
		}

		p.logger.Debug("template rendered", "template", name, "bytes", len(contents))
		plan.Outputs = append(plan.Outputs, Output{Path: name, Contents: contents})
	}

	return plan, nil
}
