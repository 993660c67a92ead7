package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"

	"github.com/yuekcc/init-nodejs-project/pkg/models"
)

// Request carries the explicit, non-layered inputs of a run.
type Request struct {
	Name     string   // explicit project name; "" or "." means the working directory
	Private  bool     // --private
	Features []string // enabled feature flags
}

// Resolution is the outcome of resolving a Request.
type Resolution struct {
	Settings  models.Settings
	OutputDir string // directory the templates are written to
	CreateDir bool   // OutputDir must be created before writing
}

// Options configures a Resolver.
type Options struct {
	// Flags provides --author and --pkg-version. May be nil.
	Flags *pflag.FlagSet
	// ConfigFile is the YAML defaults file. Empty disables it.
	ConfigFile string
	// ConfigRequired makes a missing ConfigFile an error instead of a no-op.
	ConfigRequired bool
	// Getwd returns the working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
	// Now returns the current time. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Resolver turns a Request into Settings using the precedence
// flag > environment > config file > default for layered values.
type Resolver struct {
	v      *viper.Viper
	flags  *pflag.FlagSet
	getwd  func() (string, error)
	now    func() time.Time
	logger *slog.Logger

	configLoaded string
}

// NewResolver creates a Resolver and loads the config file, if any.
// An unreadable or invalid config file is logged and ignored unless
// opts.ConfigRequired is set.
func NewResolver(opts Options) (*Resolver, error) {
	r := &Resolver{
		v:      viper.New(),
		flags:  opts.Flags,
		getwd:  opts.Getwd,
		now:    opts.Now,
		logger: opts.Logger,
	}
	if r.getwd == nil {
		r.getwd = os.Getwd
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// A variable set to "" is a value, not an absent layer.
	r.v.AllowEmptyEnv(true)
	r.v.SetDefault(KeyAuthor, DefaultAuthor)
	r.v.SetDefault(KeyVersion, DefaultVersion)

	for _, key := range []string{KeyAuthor, KeyVersion} {
		if err := r.v.BindEnv(key, envFor(key)); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", envFor(key), err)
		}
		if r.flags == nil {
			continue
		}
		if f := r.flags.Lookup(flagFor(key)); f != nil {
			if err := r.v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", f.Name, err)
			}
		}
	}

	if err := r.loadConfigFile(opts.ConfigFile, opts.ConfigRequired); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolver) loadConfigFile(path string, required bool) error {
	if path == "" {
		return nil
	}

	r.v.SetConfigFile(path)
	r.v.SetConfigType("yaml")
	err := r.v.ReadInConfig()
	switch {
	case err == nil:
		r.logger.Debug("config file loaded", "path", path)
		r.configLoaded = path
		return nil
	case errors.Is(err, fs.ErrNotExist) && !required:
		r.logger.Debug("config file not found, using defaults", "path", path)
		return nil
	case required:
		return fmt.Errorf("%w: read config file %s: %v", ErrConfiguration, path, err)
	default:
		r.logger.Warn("failed to load config file, using defaults", "path", path, "error", err)
		return nil
	}
}

// Author returns the effective author.
func (r *Resolver) Author() string {
	return r.v.GetString(KeyAuthor)
}

// Version returns the effective package version, normalized to semver.
func (r *Resolver) Version() (string, error) {
	raw := strings.TrimSpace(r.v.GetString(KeyVersion))
	sv, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid package version %q (from %s): %v", ErrConfiguration, raw, r.Source(KeyVersion), err)
	}
	return sv.String(), nil
}

// Source reports which layer provides the value of key.
func (r *Resolver) Source(key string) string {
	if r.flags != nil && r.flags.Changed(flagFor(key)) {
		return SourceFlag
	}
	if _, ok := os.LookupEnv(envFor(key)); ok {
		return SourceEnv
	}
	if r.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}

// ConfigFileUsed returns the loaded config file, or "" if none was read.
func (r *Resolver) ConfigFileUsed() string {
	return r.configLoaded
}

// Resolve produces the Settings for req.
func (r *Resolver) Resolve(req Request) (*Resolution, error) {
	cwd, err := r.getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: get working directory: %v", ErrConfiguration, err)
	}

	version, err := r.Version()
	if err != nil {
		return nil, err
	}

	res := &Resolution{}
	var name string

	if req.Name == "" || req.Name == "." {
		name, err = basename(cwd)
		if err != nil {
			return nil, err
		}
		res.OutputDir = cwd
	} else {
		if !utf8.ValidString(req.Name) {
			return nil, fmt.Errorf("%w: project name %q is not valid UTF-8", ErrConfiguration, req.Name)
		}
		name = norm.NFC.String(req.Name)
		res.OutputDir = name
		if !filepath.IsAbs(name) {
			res.OutputDir = filepath.Join(cwd, name)
		}
		res.CreateDir = true
	}

	res.Settings = models.NewSettings(
		r.Author(),
		req.Private,
		name,
		r.now().Year(),
		version,
		req.Features...,
	)

	r.logger.Debug("settings resolved",
		"author", res.Settings.Author,
		"authorSource", r.Source(KeyAuthor),
		"project", res.Settings.ProjectName,
		"private", res.Settings.Private,
		"features", res.Settings.Features,
		"outputDir", res.OutputDir,
		"createDir", res.CreateDir,
	)
	return res, nil
}

// basename returns the NFC-normalized last element of dir.
func basename(dir string) (string, error) {
	base := filepath.Base(filepath.Clean(dir))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: working directory %q has no name", ErrConfiguration, dir)
	}
	if !utf8.ValidString(base) {
		return "", fmt.Errorf("%w: working directory name %q is not valid UTF-8", ErrConfiguration, base)
	}
	return norm.NFC.String(base), nil
}
