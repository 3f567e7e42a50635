// Package config loads the settings of a generator run from an optional
// config file, TREEPARSE_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"treeparse/internal/analyze"
	"treeparse/internal/common"
)

// EnvPrefix prefixes the environment variables, e.g. TREEPARSE_OUTPUT.
const EnvPrefix = "TREEPARSE"

// FileName is the config file looked up in the working directory, with any
// extension viper decodes (treeparse.yaml, treeparse.toml, ...).
const FileName = "treeparse"

// Config holds the settings of one run.
type Config struct {
	// Roots are the bean types parsers are generated for, as import/path.Type.
	Roots []string `mapstructure:"roots"`
	// Packages are the patterns loaded for analysis. Empty means the packages
	// of Roots.
	Packages []string `mapstructure:"packages"`
	// Output is the directory receiving generated files.
	Output string `mapstructure:"output"`
	// Package is the package clause of generated files.
	Package string `mapstructure:"package"`
	// OutputImport is the import path of Output, computed from go.mod when empty.
	OutputImport string `mapstructure:"output_import"`
	// RuntimeImport is the import path of package jsontree.
	RuntimeImport string `mapstructure:"runtime_import"`
	// CustomDir holds hand-written *_parser.go files. Empty disables discovery.
	CustomDir string `mapstructure:"custom_dir"`
	// CustomImport is the import path of CustomDir, computed when empty.
	CustomImport string `mapstructure:"custom_import"`
	// Clean removes previously generated files from Output before writing.
	Clean bool `mapstructure:"clean"`
	// Workers bounds concurrent formatting and writing.
	Workers int `mapstructure:"workers"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
	// Dir is the directory packages are loaded from.
	Dir string `mapstructure:"dir"`
}

// Keys lists every configuration key.
var Keys = []string{
	"roots", "packages", "output", "package", "output_import", "runtime_import",
	"custom_dir", "custom_import", "clean", "workers", "verbose", "dir",
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("roots", []string{})
	v.SetDefault("packages", []string{})
	v.SetDefault("output", "./parsers")
	v.SetDefault("package", "")
	v.SetDefault("output_import", "")
	v.SetDefault("runtime_import", "treeparse/jsontree")
	v.SetDefault("custom_dir", "")
	v.SetDefault("custom_import", "")
	v.SetDefault("clean", true)
	v.SetDefault("workers", 4)
	v.SetDefault("verbose", false)
	v.SetDefault("dir", ".")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// ReadFile merges a config file into v. An explicit path must exist; with an
// empty path, FileName is looked up in dir and its absence is not an error.
func ReadFile(v *viper.Viper, path, dir string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
		return nil
	}

	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config file")
	}

	return nil
}

// BindFlags binds every flag of fs named like a key, with dashes for
// underscores ("runtime-import" sets runtime_import). Only flags the user set
// override the file and the environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	known := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		known[k] = true
	}

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !known[key] || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})

	return errors.Wrap(err, "binding flags")
}

// Load decodes v into a Config and fills the derived defaults.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if c.Package == "" {
		c.Package = filepath.Base(filepath.Clean(c.Output))
	}
	if common.IsEmpty(c.Packages) {
		c.Packages = c.RootPackages()
	}

	return &c, nil
}

// RootPackages returns the distinct packages of Roots in order.
func (c *Config) RootPackages() []string {
	var pkgs []string
	seen := make(map[string]bool)
	for _, root := range c.Roots {
		pkg, _, ok := analyze.SplitTypeName(root)
		if !ok {
			continue
		}
		if !seen[pkg] {
			seen[pkg] = true
			pkgs = append(pkgs, pkg)
		}
	}

	return pkgs
}

// Validate reports settings a run cannot start with.
func (c *Config) Validate() error {
	switch {
	case common.IsEmpty(c.Roots):
		return errors.WithHint(errors.New("no root types configured"),
			"pass --roots import/path.Type or set roots in treeparse.yaml")
	case c.Output == "":
		return errors.New("no output directory configured")
	case c.Workers <= 0:
		return errors.Newf("workers must be positive, got %d", c.Workers)
	}

	for _, root := range c.Roots {
		if _, _, ok := analyze.SplitTypeName(root); !ok {
			return errors.Newf("root %q is not of the form import/path.Type", root)
		}
	}

	return nil
}
