package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuekcc/init-nodejs-project/internal/config"
	"github.com/yuekcc/init-nodejs-project/internal/core/project"
	"github.com/yuekcc/init-nodejs-project/internal/template"
	"github.com/yuekcc/init-nodejs-project/internal/ui"
)

// runInit resolves the settings, optionally lets the user edit them, and
// scaffolds the project.
func runInit(cmd *cobra.Command, args []string, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	d, err := newDependencies(cmd, opts)
	if err != nil {
		return err
	}

	// --name wins over the positional argument
	name := opts.name
	if name == "" && len(args) > 0 {
		name = args[0]
	}

	req := config.Request{
		Name:     name,
		Private:  opts.private,
		Features: opts.enabledFeatures(),
	}

	if opts.interactive {
		edited, err := runSettingsForm(ctx, cmd, d, req)
		if errors.Is(err, ui.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Initialization cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		req = edited
	}

	res, err := d.Resolver.Resolve(req)
	if err != nil {
		return err
	}

	var reporter project.Reporter
	if !opts.dryRun {
		reporter = ui.NewFileProgress(d.Theme, d.Headless, out)
	}

	result, err := d.Initializer.Init(ctx, project.InitOptions{
		Settings:  res.Settings,
		OutputDir: res.OutputDir,
		CreateDir: res.CreateDir,
		Force:     opts.force,
		DryRun:    opts.dryRun,
		Git:       opts.git,
		Reporter:  reporter,
	})
	if err != nil {
		return err
	}

	printResult(out, d, res, result, opts.git)
	return nil
}

// runSettingsForm shows the interactive form prefilled with req and the
// resolved author. An edited author is fed back through the --author flag
// so it keeps flag precedence.
func runSettingsForm(ctx context.Context, cmd *cobra.Command, d *Dependencies, req config.Request) (config.Request, error) {
	features := make([]ui.FeatureOption, len(template.Features))
	for i, f := range template.Features {
		features[i] = ui.FeatureOption{Name: f.Name, Usage: f.Usage}
	}

	initial := ui.FormValues{
		Author:      d.Resolver.Author(),
		ProjectName: req.Name,
		Private:     req.Private,
		Features:    req.Features,
	}
	if initial.ProjectName == "" {
		initial.ProjectName = "."
	}

	values, err := ui.NewForm(d.Theme, d.Headless, features).Run(ctx, initial)
	if err != nil {
		return req, err
	}

	if values.Author != initial.Author {
		if err := cmd.Flags().Set(config.FlagAuthor, values.Author); err != nil {
			return req, fmt.Errorf("set author: %w", err)
		}
	}
	return config.Request{
		Name:     values.ProjectName,
		Private:  values.Private,
		Features: values.Features,
	}, nil
}

// printResult prints the summary card and the next steps.
func printResult(w io.Writer, d *Dependencies, res *config.Resolution, result *project.InitResult, gitRequested bool) {
	s := res.Settings

	license := "MIT"
	if s.Private {
		license = "UNLICENSED (private)"
	}
	details := []string{
		renderKeyValueLines([]kvPair{
			{"Directory", result.OutputDir},
			{"Author", s.Author},
			{"Version", s.Version},
			{"License", license},
		}),
		"",
	}
	for _, f := range result.Files {
		details = append(details, symSuccess()+" "+f)
	}
	for _, sk := range result.Skipped {
		details = append(details, symSkipped()+" "+cliMuted.Render(fmt.Sprintf("%s (%s)", sk.Template, sk.Reason)))
	}
	for _, warn := range result.Warnings {
		details = append(details, symWarning()+" "+cliWarn.Render(warn))
	}

	title := fmt.Sprintf("Created %s", s.ProjectName)
	if result.DryRun {
		title = fmt.Sprintf("Dry run for %s: nothing written", s.ProjectName)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, renderSuccessCard(title, details...))
	if result.DryRun {
		return
	}
	_, _ = fmt.Fprintln(w)
	_ = ui.WriteMarkdown(w, d.Theme, d.Headless, nextSteps(res, result, gitRequested))
}

// nextSteps returns the follow-up commands as markdown.
func nextSteps(res *config.Resolution, result *project.InitResult, gitRequested bool) string {
	var steps []string
	if res.CreateDir {
		steps = append(steps, fmt.Sprintf("`cd %s`", filepath.Base(result.OutputDir)))
	}
	steps = append(steps, "`npm install`")
	if res.Settings.HasFeature("vue") {
		steps = append(steps, "`npm run dev`")
	} else {
		steps = append(steps, "`npm test`")
	}
	if !gitRequested {
		steps = append(steps, "`git init`")
	}

	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}
