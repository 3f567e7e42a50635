// Package driver runs the generator end to end: custom parser discovery,
// package loading, analysis of every root, synthesis and emission.
package driver

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"treeparse/internal/analyze"
	"treeparse/internal/common"
	"treeparse/internal/config"
	"treeparse/internal/diagnostic"
	"treeparse/internal/gen"
	"treeparse/internal/modpath"
	"treeparse/internal/registry"
)

// Driver executes runs for one configuration.
type Driver struct {
	cfg      *config.Config
	logger   *zap.SugaredLogger
	debounce time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithDebounce sets how long Watch waits for changes to settle.
func WithDebounce(period time.Duration) Option {
	return func(d *Driver) { d.debounce = period }
}

// New creates a Driver for cfg.
func New(cfg *config.Config, opts ...Option) *Driver {
	d := &Driver{
		cfg:      cfg,
		logger:   zap.NewNop().Sugar(),
		debounce: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Analysis is the merged closure of every configured root.
type Analysis struct {
	Closure  *analyze.Closure
	Registry *registry.Registry
	// Dirs are the source directories of the loaded packages.
	Dirs []string
}

// Result is the outcome of one generation.
type Result struct {
	*Analysis

	Files       []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics
	Removed     []string // stale generated files removed from the output
}

// Analyze discovers custom parsers, loads the configured packages and
// analyzes every root. Unsupported types of all roots are reported together.
func (d *Driver) Analyze(ctx context.Context) (*Analysis, error) {
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}

	reg, err := d.discover()
	if err != nil {
		return nil, err
	}

	loader := analyze.NewLoader(analyze.WithDir(d.cfg.Dir), analyze.WithLoaderLogger(d.logger))
	if err := loader.Load(d.cfg.Packages...); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analyzer := analyze.NewAnalyzer(loader, analyze.WithOverrides(reg), analyze.WithLogger(d.logger))

	var closures []*analyze.Closure
	var unsupported []*analyze.UnsupportedTypeError
	for _, root := range d.cfg.Roots {
		closure, err := analyzer.Analyze(root)

		var ute *analyze.UnsupportedTypesError
		switch {
		case errors.As(err, &ute):
			unsupported = append(unsupported, ute.Errs...)
		case err != nil:
			return nil, errors.Wrapf(err, "analyzing %s", root)
		}
		closures = append(closures, closure)
	}

	if len(unsupported) > 0 {
		return nil, &analyze.UnsupportedTypesError{Errs: unsupported}
	}

	var dirs []string
	for _, pkg := range loader.Packages() {
		if file, ok := common.First(pkg.GoFiles); ok {
			dirs = append(dirs, filepath.Dir(file))
		}
	}

	closure := analyze.Merge(closures...)
	d.logger.Debugw("analysis complete", "roots", len(d.cfg.Roots), "count", len(closure.Types))

	return &Analysis{Closure: closure, Registry: reg, Dirs: dirs}, nil
}

// Build analyzes and synthesizes the output files in memory.
func (d *Driver) Build(ctx context.Context) (*Result, error) {
	analysis, err := d.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	importPath, err := d.outputImport()
	if err != nil {
		return nil, err
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:   d.cfg.Package,
		ImportPath:    importPath,
		OutputDir:     d.path(d.cfg.Output),
		RuntimeImport: d.cfg.RuntimeImport,
		Workers:       d.cfg.Workers,
	}, gen.WithRegistry(analysis.Registry), gen.WithLogger(d.logger))

	files, diags, err := generator.Generate(ctx, analysis.Closure)
	if err != nil {
		return nil, err
	}

	res := &Result{Analysis: analysis, Files: files}
	res.Diagnostics.Merge(analysis.Closure.Diagnostics)
	res.Diagnostics.Merge(diags)
	res.Diagnostics.Dedupe()

	return res, nil
}

// Generate builds the output and writes it, first removing the files of
// earlier runs when Clean is set.
func (d *Driver) Generate(ctx context.Context) (*Result, error) {
	res, err := d.Build(ctx)
	if err != nil {
		return nil, err
	}

	out := d.path(d.cfg.Output)
	if d.cfg.Clean {
		removed, err := gen.Clean(out)
		if err != nil {
			return nil, err
		}
		res.Removed = removed
	}

	if err := gen.WriteFiles(ctx, res.Files, out, d.cfg.Workers); err != nil {
		return nil, err
	}

	d.logger.Infow("wrote parsers", "dir", out, "count", len(res.Files), "removed", len(res.Removed))
	return res, nil
}

// Check builds the output and compares it with the output directory without
// writing anything.
func (d *Driver) Check(ctx context.Context) ([]gen.Drift, error) {
	res, err := d.Build(ctx)
	if err != nil {
		return nil, err
	}

	return gen.Check(res.Files, d.path(d.cfg.Output))
}

func (d *Driver) discover() (*registry.Registry, error) {
	if d.cfg.CustomDir == "" {
		return registry.New(), nil
	}

	opts := []registry.DiscoverOption{registry.WithLogger(d.logger)}
	if d.cfg.CustomImport != "" {
		opts = append(opts, registry.WithImportPath(d.cfg.CustomImport))
	}

	reg, err := registry.Discover(d.path(d.cfg.CustomDir), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "discovering custom parsers")
	}

	return reg, nil
}

func (d *Driver) outputImport() (string, error) {
	if d.cfg.OutputImport != "" {
		return d.cfg.OutputImport, nil
	}

	importPath, err := modpath.ImportPath(d.path(d.cfg.Output))
	if err != nil {
		return "", errors.WithHint(errors.Wrap(err, "computing output import path"),
			"set output_import when the output directory is outside the module")
	}

	return importPath, nil
}

// path resolves p against the configured directory.
func (d *Driver) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(d.cfg.Dir, p)
}
