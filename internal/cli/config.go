package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yuekcc/init-nodejs-project/internal/config"
	"github.com/yuekcc/init-nodejs-project/internal/template"
	"github.com/yuekcc/init-nodejs-project/pkg/version"
)

// configValue is one layered value and the layer it came from.
type configValue struct {
	Value  string `yaml:"value"`
	Source string `yaml:"source"`
}

// buildInfo identifies the running binary.
type buildInfo struct {
	Version string `yaml:"version"`
	Commit  string `yaml:"commit"`
	Date    string `yaml:"date"`
}

// configReport is the document printed by "config show".
type configReport struct {
	ConfigFile string      `yaml:"config_file"`
	Author     configValue `yaml:"author"`
	Version    configValue `yaml:"version"`
	Build      buildInfo   `yaml:"build"`
}

// configDefaults is the document written by "config init".
type configDefaults struct {
	Author  string `yaml:"author"`
	Version string `yaml:"version"`
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the defaults file",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigShowCmd(opts), newConfigInitCmd(opts))
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective author and version with their sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := newDependencies(cmd, opts)
			if err != nil {
				return err
			}
			ver, err := d.Resolver.Version()
			if err != nil {
				return err
			}

			report := configReport{
				ConfigFile: d.Resolver.ConfigFileUsed(),
				Author:     configValue{Value: d.Resolver.Author(), Source: d.Resolver.Source(config.KeyAuthor)},
				Version:    configValue{Value: ver, Source: d.Resolver.Source(config.KeyVersion)},
				Build: buildInfo{
					Version: version.GetVersion(),
					Commit:  version.GetCommit(),
					Date:    version.GetDate(),
				},
			}
			data, err := marshalYAML(report)
			if err != nil {
				return fmt.Errorf("encode config report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective author and version to the defaults file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configFile
			if path == "" {
				path = config.DefaultConfigFile()
			}
			if path == "" {
				return fmt.Errorf("%w: no user config directory, pass --config", config.ErrConfiguration)
			}

			// An existing file is read as an optional layer, so --force keeps
			// its values unless flags or the environment override them.
			resolver, err := config.NewResolver(config.Options{
				Flags:      cmd.Flags(),
				ConfigFile: path,
				Logger:     newLogger(cmd.ErrOrStderr(), opts.verbose),
			})
			if err != nil {
				return err
			}
			ver, err := resolver.Version()
			if err != nil {
				return err
			}
			data, err := marshalYAML(configDefaults{Author: resolver.Author(), Version: ver})
			if err != nil {
				return fmt.Errorf("encode defaults: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return &template.WriteError{Path: filepath.Dir(path), Err: err}
			}
			w := &template.AtomicWriter{Overwrite: force}
			if err := w.WriteFile(path, data, 0o644); err != nil {
				return &template.WriteError{Path: path, Err: err}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Defaults written", path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing defaults file")
	return cmd
}

// marshalYAML encodes v with two-space indentation.
func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
