package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/yuekcc/init-nodejs-project/internal/config"
	"github.com/yuekcc/init-nodejs-project/internal/core/project"
	"github.com/yuekcc/init-nodejs-project/internal/template"
	"github.com/yuekcc/init-nodejs-project/internal/ui"
	"github.com/yuekcc/init-nodejs-project/pkg/version"
)

// Dependencies holds the services used by one command invocation. It is
// the only place where concrete types are instantiated and wired together.
type Dependencies struct {
	Resolver    *config.Resolver
	Initializer project.Initializer
	Theme       *ui.Theme
	Headless    *ui.HeadlessManager
	Logger      *slog.Logger
}

// newDependencies wires the services for cmd. An explicit --config file
// must exist; the default one is optional.
func newDependencies(cmd *cobra.Command, opts *rootOptions) (*Dependencies, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	logger.Debug("starting", "version", version.GetFullVersion(), "command", cmd.CommandPath())

	configFile, required := opts.configFile, true
	if configFile == "" {
		configFile, required = config.DefaultConfigFile(), false
	}

	resolver, err := config.NewResolver(config.Options{
		Flags:          cmd.Flags(),
		ConfigFile:     configFile,
		ConfigRequired: required,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := template.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	planner := template.NewPlanner(catalog, template.WithLogger(logger))
	deployer := template.NewDeployer(
		template.WithForce(opts.force),
		template.WithDeployLogger(logger),
	)

	return &Dependencies{
		Resolver:    resolver,
		Initializer: project.NewInitializer(planner, deployer, logger),
		Theme:       ui.NewTheme(),
		Headless:    ui.NewHeadlessManager(),
		Logger:      logger,
	}, nil
}

// newLogger logs warnings to w, or everything down to debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
