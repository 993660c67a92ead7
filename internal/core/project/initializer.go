package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yuekcc/init-nodejs-project/internal/template"
	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

// dirPerm is the mode of a created project directory.
const dirPerm fs.FileMode = 0o755

// InitOptions configures one scaffolding run.
type InitOptions struct {
	Settings  models.Settings // Resolved, immutable run settings.
	OutputDir string          // Directory receiving the rendered files.
	CreateDir bool            // If true, OutputDir is created first.
	Force     bool            // If true, tolerate an existing OutputDir and replace existing files.
	DryRun    bool            // If true, render only; nothing touches the disk.
	Git       bool            // If true, initialize a git repository in OutputDir.
	Reporter  Reporter        // Optional progress observer.
}

// InitResult summarizes the outcome of a run.
type InitResult struct {
	OutputDir      string             // Cleaned output directory.
	CreatedDir     bool               // Whether OutputDir was created by this run.
	Files          []string           // Output names written, or planned in a dry run.
	Skipped        []template.Skipped // Templates omitted by skip rules.
	GitInitialized bool               // Whether a new repository was created.
	Warnings       []string           // Non-fatal warnings.
	DryRun         bool
}

// Initializer scaffolds a Node.js project.
type Initializer interface {
	// Init performs one run with the given options.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	planner  *template.Planner
	deployer template.Deployer
	logger   *slog.Logger
}

// NewInitializer creates an Initializer with the given dependencies. A nil
// deployer writes atomically without overwriting.
func NewInitializer(planner *template.Planner, deployer template.Deployer, logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deployer == nil {
		deployer = template.NewDeployer(template.WithDeployLogger(logger))
	}
	return &projectInitializer{
		planner:  planner,
		deployer: deployer,
		logger:   logger,
	}
}

// Init creates the output directory if requested, renders every applicable
// template and writes the results. Rendering completes before the first
// write, so a template failure leaves the output directory untouched.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	opts.OutputDir = filepath.Clean(opts.OutputDir)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i.logger.Info("initializing project",
		"dir", opts.OutputDir,
		"name", opts.Settings.ProjectName,
		"private", opts.Settings.Private,
		"features", opts.Settings.Features,
		"dryRun", opts.DryRun,
	)

	result := &InitResult{
		OutputDir: opts.OutputDir,
		DryRun:    opts.DryRun,
	}

	// Step 1: Create the output directory
	if opts.CreateDir && !opts.DryRun {
		created, err := i.createOutputDir(opts.OutputDir, opts.Force)
		if err != nil {
			return nil, err
		}
		result.CreatedDir = created
		if !created {
			result.Warnings = append(result.Warnings, fmt.Sprintf("directory %s already exists", opts.OutputDir))
		}
	}

	// Step 2: Render all templates
	plan, err := i.planner.Plan(ctx, opts.Settings)
	if err != nil {
		return nil, err
	}
	result.Skipped = plan.Skipped

	if opts.DryRun {
		result.Files = plan.Paths()
		i.logger.Info("dry run complete", "planned", len(result.Files), "skipped", len(result.Skipped))
		return result, nil
	}

	// Step 3: Write the outputs one at a time so progress can be reported
	rep := opts.Reporter
	if rep == nil {
		rep = nopReporter{}
	}
	rep.Planned(plan.Paths())
	defer rep.Done()

	result.Files = make([]string, 0, len(plan.Outputs))
	for _, out := range plan.Outputs {
		if _, err := i.deployer.Deploy(ctx, opts.OutputDir, []template.Output{out}); err != nil {
			return result, fmt.Errorf("deploy templates: %w", err)
		}
		result.Files = append(result.Files, out.Path)
		rep.Written(out.Path)
	}

	// Step 4: Initialize git
	if opts.Git {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		created, err := initRepository(opts.OutputDir)
		if err != nil {
			return result, err
		}
		result.GitInitialized = created
		if !created {
			result.Warnings = append(result.Warnings, "git repository already exists")
			i.logger.Info("git repository already exists", "dir", opts.OutputDir)
		}
	}

	i.logger.Info("project initialized",
		"files", len(result.Files),
		"skipped", len(result.Skipped),
		"git", result.GitInitialized,
	)

	return result, nil
}

// createOutputDir creates dir. With force, an existing directory is reused
// and reported as not created.
func (i *projectInitializer) createOutputDir(dir string, force bool) (bool, error) {
	err := os.Mkdir(dir, dirPerm)
	if err == nil {
		i.logger.Debug("directory created", "dir", dir)
		return true, nil
	}
	if !errors.Is(err, fs.ErrExist) || !force {
		return false, fmt.Errorf("%w: create directory %s: %w", ErrIO, dir, err)
	}

	info, statErr := os.Stat(dir)
	if statErr != nil {
		return false, fmt.Errorf("%w: stat %s: %w", ErrIO, dir, statErr)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s: %w", ErrIO, dir, ErrNotDirectory)
	}
	i.logger.Info("reusing existing directory", "dir", dir)
	return false, nil
}
