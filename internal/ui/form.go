package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FeatureOption is one selectable feature in the settings form.
type FeatureOption struct {
	Name  string
	Usage string
}

// FormValues holds the values edited by the settings form.
type FormValues struct {
	Author      string
	ProjectName string
	Private     bool
	Features    []string
}

// Form edits FormValues interactively.
type Form interface {
	// Run shows the form prefilled with initial and returns the edited values.
	Run(ctx context.Context, initial FormValues) (*FormValues, error)
}

// formImpl implements Form with a huh form.
type formImpl struct {
	theme    *Theme
	headless *HeadlessManager
	features []FeatureOption
}

// NewForm creates a Form offering the given features.
func NewForm(theme *Theme, hm *HeadlessManager, features []FeatureOption) Form {
	return &formImpl{theme: theme, headless: hm, features: features}
}

// Run returns ErrHeadless without a terminal and ErrCancelled when the
// user aborts.
func (f *formImpl) Run(ctx context.Context, initial FormValues) (*FormValues, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.headless.IsHeadless() {
		return nil, ErrHeadless
	}

	values := initial
	values.Features = append([]string(nil), initial.Features...)

	form := huh.NewForm(f.groups(&values)...).
		WithTheme(f.huhTheme()).
		WithAccessible(f.theme.NoColor)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("settings form: %w", err)
	}

	values.Author = strings.TrimSpace(values.Author)
	values.ProjectName = strings.TrimSpace(values.ProjectName)
	return &values, nil
}

// groups builds one group per form page. The feature page is omitted when
// no features are offered.
func (f *formImpl) groups(values *FormValues) []*huh.Group {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Description("Written to package.json and LICENSE").
				Placeholder(values.Author).
				Value(&values.Author).
				Validate(required("author")),
			huh.NewInput().
				Title("Project name").
				Description(`Use "." for the current directory`).
				Placeholder(values.ProjectName).
				Value(&values.ProjectName).
				Validate(required("project name")),
			huh.NewConfirm().
				Title("Private package?").
				Description("Private packages get no LICENSE file").
				Affirmative("Yes").
				Negative("No").
				Value(&values.Private),
		),
	}

	if len(f.features) > 0 {
		opts := make([]huh.Option[string], len(f.features))
		for i, feat := range f.features {
			label := feat.Name
			if feat.Usage != "" {
				label = feat.Name + " - " + feat.Usage
			}
			opts[i] = huh.NewOption(label, feat.Name)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Features").
				Options(opts...).
				Value(&values.Features),
		))
	}
	return groups
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// huhTheme maps the brand colors onto a huh theme.
func (f *formImpl) huhTheme() *huh.Theme {
	t := huh.ThemeBase()
	if f.theme.NoColor {
		return t
	}

	primary := lipgloss.Color(f.theme.Colors.Primary)
	green := lipgloss.Color(f.theme.Colors.Success)
	red := lipgloss.Color(f.theme.Colors.Error)
	muted := lipgloss.Color(f.theme.Colors.Muted)

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description
	return t
}
