// Package cli provides the Cobra command tree of init-nodejs-project and
// the composition root wiring configuration, templates and UI together.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuekcc/init-nodejs-project/internal/config"
	"github.com/yuekcc/init-nodejs-project/internal/defs"
	"github.com/yuekcc/init-nodejs-project/internal/template"
	"github.com/yuekcc/init-nodejs-project/pkg/version"
)

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	name        string
	private     bool
	features    map[string]*bool
	git         bool
	force       bool
	dryRun      bool
	interactive bool
	configFile  string
	verbose     bool
}

// enabledFeatures returns the names of the feature flags that were set,
// in declaration order.
func (o *rootOptions) enabledFeatures() []string {
	var names []string
	for _, f := range template.Features {
		if on := o.features[f.Name]; on != nil && *on {
			names = append(names, f.Name)
		}
	}
	return names
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{features: make(map[string]*bool)}

	cmd := &cobra.Command{
		Use:   defs.AppName + " [name]",
		Short: "Scaffold a Node.js project",
		Long: `Scaffold a Node.js project: package.json, LICENSE, .editorconfig and
.gitignore, plus optional tool configs.

Usage patterns:
  init-nodejs-project            Write into the current directory
  init-nodejs-project .          Same as above
  init-nodejs-project my-app     Create ./my-app/ and write into it

The author defaults to $` + defs.EnvAuthor + `, then the "author" key of
the config file, then "` + config.DefaultAuthor + `".

Optional features: ` + strings.Join(template.FeatureNames(), ", ") + `.`,
		Example: `  init-nodejs-project my-app -a alice
  init-nodejs-project my-app --vue --typescript --git
  init-nodejs-project -p --dry-run`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetShortVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringP(config.FlagAuthor, "a", config.DefaultAuthor, "package author (env "+defs.EnvAuthor+")")
	pf.String(config.FlagVersion, config.DefaultVersion, "initial package version (env "+defs.EnvVersion+")")
	pf.StringVar(&opts.configFile, "config", "", "defaults file (default "+displayConfigFile()+")")
	pf.BoolVar(&opts.verbose, "verbose", false, "log debug output to stderr")

	f := cmd.Flags()
	f.StringVarP(&opts.name, "name", "n", "", "project name; creates ./<name> (default: current directory name)")
	f.BoolVarP(&opts.private, "private", "p", false, "mark the package private and omit LICENSE")
	for _, feat := range template.Features {
		opts.features[feat.Name] = f.Bool(feat.Name, false, feat.Usage)
	}
	f.BoolVar(&opts.git, "git", false, "initialize a git repository")
	f.BoolVar(&opts.force, "force", false, "reuse an existing directory and overwrite existing files")
	f.BoolVar(&opts.dryRun, "dry-run", false, "show what would be written without touching the disk")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "edit the settings in a form before writing")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// Execute runs the command tree. A failure is reported as a single line
// on stderr and returned.
func Execute(ctx context.Context) error {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return err
	}
	return nil
}

func displayConfigFile() string {
	if p := config.DefaultConfigFile(); p != "" {
		return p
	}
	return "none"
}
