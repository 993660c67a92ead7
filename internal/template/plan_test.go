package template

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/yuekcc/init-nodejs-project/internal/defs"
	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

func defaultPlanner(t *testing.T) *Planner {
	t.Helper()
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog error: %v", err)
	}
	return NewPlanner(c)
}

func outputByPath(p *Plan, path string) (Output, bool) {
	for _, o := range p.Outputs {
		if o.Path == path {
			return o, true
		}
	}
	return Output{}, false
}

func TestPlannerPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("public_no_features", func(t *testing.T) {
		plan, err := defaultPlanner(t).Plan(ctx, models.NewSettings("alice", false, "demo", 2024, ""))
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		want := []string{defs.EditorConfig, defs.GitIgnore, defs.License, defs.PackageJSON}
		if got := plan.Paths(); !slices.Equal(got, want) {
			t.Errorf("Paths() = %v, want %v", got, want)
		}
		if len(plan.Skipped) != 2 {
			t.Errorf("Skipped = %v, want 2 feature templates", plan.Skipped)
		}
	})

	t.Run("private_omits_license", func(t *testing.T) {
		plan, err := defaultPlanner(t).Plan(ctx, models.NewSettings("alice", true, "demo", 2024, "", "vue", "typescript"))
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		if _, ok := outputByPath(plan, defs.License); ok {
			t.Error("LICENSE rendered for a private package")
		}
		want := []string{defs.EditorConfig, defs.GitIgnore, defs.PackageJSON, defs.TSConfigJSON, defs.ViteConfigJS}
		if got := plan.Paths(); !slices.Equal(got, want) {
			t.Errorf("Paths() = %v, want %v", got, want)
		}
		if len(plan.Skipped) != 1 || plan.Skipped[0].Template != defs.License {
			t.Errorf("Skipped = %v, want only LICENSE", plan.Skipped)
		}
	})

	t.Run("feature_templates_follow_flags", func(t *testing.T) {
		for _, f := range Features {
			without, err := defaultPlanner(t).Plan(ctx, models.NewSettings("a", false, "p", 2024, ""))
			if err != nil {
				t.Fatalf("Plan error: %v", err)
			}
			if _, ok := outputByPath(without, f.Template); ok {
				t.Errorf("%s rendered without feature %s", f.Template, f.Name)
			}

			with, err := defaultPlanner(t).Plan(ctx, models.NewSettings("a", false, "p", 2024, "", f.Name))
			if err != nil {
				t.Fatalf("Plan error: %v", err)
			}
			if _, ok := outputByPath(with, f.Template); !ok {
				t.Errorf("%s missing with feature %s", f.Template, f.Name)
			}
		}
	})

	t.Run("package_descriptor_scenario", func(t *testing.T) {
		plan, err := defaultPlanner(t).Plan(ctx, models.NewSettings("alice", false, "demo", 2024, ""))
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		out, ok := outputByPath(plan, defs.PackageJSON)
		if !ok {
			t.Fatal("package.json not rendered")
		}

		var pkg struct {
			Name    string `json:"name"`
			Author  string `json:"author"`
			Private bool   `json:"private"`
			License string `json:"license"`
			Version string `json:"version"`
		}
		if err := json.Unmarshal(out.Contents, &pkg); err != nil {
			t.Fatalf("package.json is not valid JSON: %v\n%s", err, out.Contents)
		}
		if pkg.Name != "demo" || pkg.Author != "alice" || pkg.Private {
			t.Errorf("package.json = %+v", pkg)
		}
		if pkg.License != "MIT" {
			t.Errorf("license = %q, want MIT", pkg.License)
		}
		if pkg.Version != models.DefaultVersion {
			t.Errorf("version = %q, want %q", pkg.Version, models.DefaultVersion)
		}

		lic, ok := outputByPath(plan, defs.License)
		if !ok {
			t.Fatal("LICENSE not rendered")
		}
		if !strings.Contains(string(lic.Contents), "Copyright (c) 2024 alice") {
			t.Errorf("LICENSE missing copyright line:\n%s", lic.Contents)
		}
	})

	t.Run("every_feature_combination_is_valid_json", func(t *testing.T) {
		combos := [][]string{nil, {"vue"}, {"typescript"}, {"vue", "typescript"}}
		for _, private := range []bool{false, true} {
			for _, features := range combos {
				s := models.NewSettings(`we"ird\name`, private, "my app", 2024, "2.0.0-rc.1", features...)
				plan, err := defaultPlanner(t).Plan(ctx, s)
				if err != nil {
					t.Fatalf("Plan(private=%v, features=%v) error: %v", private, features, err)
				}
				for _, name := range []string{defs.PackageJSON, defs.TSConfigJSON} {
					out, ok := outputByPath(plan, name)
					if !ok {
						continue
					}
					if !json.Valid(out.Contents) {
						t.Errorf("%s invalid JSON for private=%v features=%v:\n%s", name, private, features, out.Contents)
					}
				}
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		s := models.NewSettings("alice", false, "demo", 2024, "", "vue")
		first, err := defaultPlanner(t).Plan(ctx, s)
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		second, err := defaultPlanner(t).Plan(ctx, s)
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		if len(first.Outputs) != len(second.Outputs) {
			t.Fatalf("output count differs: %d vs %d", len(first.Outputs), len(second.Outputs))
		}
		for i := range first.Outputs {
			if first.Outputs[i].Path != second.Outputs[i].Path ||
				string(first.Outputs[i].Contents) != string(second.Outputs[i].Contents) {
				t.Errorf("output %d differs between runs", i)
			}
		}
	})

	t.Run("unknown_placeholder_aborts", func(t *testing.T) {
		c := mapCatalog(t, map[string]string{
			"a.txt": "{{.author}}",
			"b.txt": "{{.homepage}}",
		})
		_, err := NewPlanner(c).Plan(ctx, models.NewSettings("alice", false, "demo", 2024, ""))
		if !errors.Is(err, ErrTemplate) {
			t.Fatalf("expected ErrTemplate, got: %v", err)
		}
		if !strings.Contains(err.Error(), "b.txt") {
			t.Errorf("error %q does not name the failing template", err)
		}
	})

	t.Run("schema_violation_aborts", func(t *testing.T) {
		c := mapCatalog(t, map[string]string{
			defs.PackageJSON: `{"name": "{{.projectName}}", "version": "{{.version}}", "private": "{{.private}}"}`,
		})
		_, err := NewPlanner(c).Plan(ctx, models.NewSettings("alice", false, "demo", 2024, ""))
		if !errors.Is(err, ErrSchemaViolation) {
			t.Fatalf("expected ErrSchemaViolation, got: %v", err)
		}
	})

	t.Run("canceled_context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := defaultPlanner(t).Plan(cctx, models.NewSettings("alice", false, "demo", 2024, ""))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})

	t.Run("custom_rules", func(t *testing.T) {
		c := mapCatalog(t, map[string]string{"keep": "k", "drop": "d"})
		rules := []SkipRule{{Template: "drop", Reason: "test", Skip: func(models.Settings) bool { return true }}}

		plan, err := NewPlanner(c, WithRules(rules)).Plan(ctx, models.Settings{})
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		if got := plan.Paths(); !slices.Equal(got, []string{"keep"}) {
			t.Errorf("Paths() = %v, want [keep]", got)
		}
	})
}

func TestPlannerPlanUserValues(t *testing.T) {
	ctx := context.Background()

	t.Run("author_with_placeholder_syntax_and_email", func(t *testing.T) {
		for _, author := range []string{"${USER}", "{{me}}", "Alice <alice@example.com>", "Tom & Jerry"} {
			plan, err := defaultPlanner(t).Plan(ctx, models.NewSettings(author, false, "{{x}}", 2024, ""))
			if err != nil {
				t.Fatalf("Plan(author=%q) error: %v", author, err)
			}
			pkg, _ := outputByPath(plan, defs.PackageJSON)
			var parsed struct {
				Name   string `json:"name"`
				Author string `json:"author"`
			}
			if err := json.Unmarshal(pkg.Contents, &parsed); err != nil {
				t.Fatalf("package.json is not valid JSON: %v\n%s", err, pkg.Contents)
			}
			if parsed.Author != author || parsed.Name != "{{x}}" {
				t.Errorf("author/name = %q/%q, want %q/{{x}}", parsed.Author, parsed.Name, author)
			}
			if !strings.Contains(string(pkg.Contents), author) {
				t.Errorf("package.json should hold %q verbatim:\n%s", author, pkg.Contents)
			}
		}
	})

	t.Run("vite_config_ignores_project_name", func(t *testing.T) {
		render := func(name string) []byte {
			plan, err := defaultPlanner(t).Plan(ctx, models.NewSettings("alice", false, name, 2024, "", "vue"))
			if err != nil {
				t.Fatalf("Plan(%q) error: %v", name, err)
			}
			vite, ok := outputByPath(plan, defs.ViteConfigJS)
			if !ok {
				t.Fatalf("Plan(%q) has no %s", name, defs.ViteConfigJS)
			}
			return vite.Contents
		}
		if a, b := render("demo"), render("line\nbreak"); string(a) != string(b) {
			t.Errorf("vite.config.js depends on the project name:\n%s\n---\n%s", a, b)
		}
	})
}
