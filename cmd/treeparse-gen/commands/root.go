// Package commands holds the cobra commands of treeparse-gen.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"treeparse/internal/config"
	"treeparse/internal/diagnostic"
	"treeparse/internal/driver"
	"treeparse/internal/logging"
)

// ErrOutOfDate is returned by check when the output differs from a fresh
// generation. The process exits with status 1 on it.
var ErrOutOfDate = errors.New("generated parsers are out of date")

// app is the state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.SugaredLogger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "treeparse-gen",
		Short: "Generate parsers from decoded JSON trees to Go structs",
		Long: `treeparse-gen walks the types reachable from one or more root structs and
writes, for each of them, ParseT / ParseTNode / ParseTInto functions that read
a decoded JSON tree (map[string]any, []any, ...) into the typed value.

Roots are written as import/path.TypeName. Hand-written parsers placed in the
custom directory as *_parser.go files replace the generated ones.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: treeparse.yaml in --dir)")
	flags.StringSliceP("roots", "r", nil, "root types, as import/path.TypeName")
	flags.StringSlice("packages", nil, "package patterns to load (default: the packages of the roots)")
	flags.StringP("output", "o", "", "output directory (default ./parsers)")
	flags.String("package", "", "package name of generated files (default: output directory name)")
	flags.String("output-import", "", "import path of the output directory (default: from go.mod)")
	flags.String("runtime-import", "", "import path of the jsontree runtime")
	flags.String("custom-dir", "", "directory of hand-written *_parser.go files")
	flags.String("custom-import", "", "import path of the custom directory (default: from go.mod)")
	flags.Int("workers", 0, "concurrent format and write workers")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.StringP("dir", "C", "", "directory packages are loaded from")

	root.AddCommand(
		newGenCommand(a),
		newAnalyzeCommand(a),
		newCheckCommand(a),
		newWatchCommand(a),
	)

	return root
}

// load merges the config file, environment and flags into a.cfg.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	if err := config.ReadFile(a.v, a.configFile, a.v.GetString("dir")); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Verbose)
	a.logger.Debugw("configuration loaded", "file", a.v.ConfigFileUsed(), "roots", cfg.Roots)
	return nil
}

func (a *app) driver(opts ...driver.Option) *driver.Driver {
	return driver.New(a.cfg, append([]driver.Option{driver.WithLogger(a.logger)}, opts...)...)
}

// logDiagnostics reports the diagnostics of a run through the logger.
func (a *app) logDiagnostics(d diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		a.logger.Warnw(w.Message, "code", w.Code, "type", w.Type, "field", w.Field)
	}
	for _, i := range d.Infos {
		a.logger.Debugw(i.Message, "code", i.Code, "type", i.Type, "field", i.Field)
	}
}
