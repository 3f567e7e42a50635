package gen

import (
	"bytes"
	"context"
	"go/format"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"treeparse/internal/analyze"
	"treeparse/internal/diagnostic"
	"treeparse/internal/registry"
	"treeparse/internal/synth"
)

// Header starts every generated file. Clean only removes files carrying it.
const Header = "// Code generated by treeparse-gen. DO NOT EDIT."

// EnumsFile holds the enum match functions of a run.
const EnumsFile = "treeparse_enums.go"

// DefaultRuntimeImport is the import path of the runtime package.
const DefaultRuntimeImport = "treeparse/jsontree"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// ImportPath is the import path of the generated package. Types declared
	// in it are referenced unqualified.
	ImportPath string
	// OutputDir is where generated files go, and where debug sidecars are
	// written when formatting fails.
	OutputDir string
	// RuntimeImport is the import path of package jsontree.
	RuntimeImport string
	// Workers bounds concurrent formatting and writing.
	Workers int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:   "parsers",
		OutputDir:     "./parsers",
		RuntimeImport: DefaultRuntimeImport,
		Workers:       4,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "order_parser.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator turns an analyzed closure into source files.
type Generator struct {
	config   GeneratorConfig
	registry *registry.Registry
	logger   *zap.SugaredLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry makes generated code call the hand-written parsers in r.
func WithRegistry(r *registry.Registry) Option {
	return func(g *Generator) { g.registry = r }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	defaults := DefaultGeneratorConfig()
	if config.PackageName == "" {
		config.PackageName = defaults.PackageName
	}
	if config.RuntimeImport == "" {
		config.RuntimeImport = defaults.RuntimeImport
	}
	if config.Workers <= 0 {
		config.Workers = defaults.Workers
	}

	g := &Generator{
		config: config,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate renders one file per closure type plus the enum file, and returns
// them in closure order with the synthesis diagnostics. Synthesis runs
// sequentially; formatting runs on up to Workers goroutines.
func (g *Generator) Generate(ctx context.Context, closure *analyze.Closure) ([]GeneratedFile, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics
	matchers := synth.NewMatchers()

	var raw []GeneratedFile
	names := make(map[string]string)

	for _, t := range closure.Types {
		unit, content, err := g.renderUnit(closure, t, matchers, &diags)
		if err != nil {
			return nil, diags, errors.Wrapf(err, "generating %s", closure.Name(t))
		}

		filename := FileName(unit.Name)
		if other, taken := names[filename]; taken {
			return nil, diags, errors.Newf("units %s and %s both map to %s", other, unit.Name, filename)
		}
		names[filename] = unit.Name

		raw = append(raw, GeneratedFile{Filename: filename, Content: content})
		g.logger.Debugw("synthesized unit", "type", unit.Doc, "file", filename)
	}

	if matchers.Len() > 0 {
		content, err := g.renderEnums(closure, matchers)
		if err != nil {
			return nil, diags, errors.Wrap(err, "generating enum matchers")
		}
		raw = append(raw, GeneratedFile{Filename: EnumsFile, Content: content})
	}

	files, err := g.formatAll(ctx, raw)
	if err != nil {
		return nil, diags, err
	}

	diags.Dedupe()
	g.logger.Infow("generated parsers", "count", len(files), "warnings", len(diags.Warnings))
	return files, diags, nil
}

func (g *Generator) renderUnit(
	closure *analyze.Closure,
	t *analyze.TypeInfo,
	matchers *synth.Matchers,
	diags *diagnostic.Diagnostics,
) (*synth.Unit, []byte, error) {
	imports := synth.NewImportSet(g.config.ImportPath)
	engine := synth.NewEngine(closure, imports, g.config.RuntimeImport,
		synth.WithRegistry(g.registry),
		synth.WithMatchers(matchers),
		synth.WithDiagnostics(diags),
		synth.WithLogger(g.logger))

	unit := engine.Unit(t)
	data := &unitTemplateData{
		Header:      Header,
		PackageName: g.config.PackageName,
		Runtime:     engine.Runtime(),
		Unit:        unit,
		Imports:     imports.Specs(),
	}

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return nil, nil, errors.Wrap(err, "executing template")
	}

	return unit, buf.Bytes(), nil
}

func (g *Generator) renderEnums(closure *analyze.Closure, matchers *synth.Matchers) ([]byte, error) {
	imports := synth.NewImportSet(g.config.ImportPath)
	engine := synth.NewEngine(closure, imports, g.config.RuntimeImport,
		synth.WithMatchers(matchers))

	var funcs []string
	for _, t := range matchers.Types() {
		funcs = append(funcs, strings.Join(engine.Matcher(t), "\n"))
	}

	data := &enumsTemplateData{
		Header:      Header,
		PackageName: g.config.PackageName,
		Funcs:       funcs,
	}

	// Only integer enums call into the runtime.
	usesRuntime := false
	for _, t := range matchers.Types() {
		if t.IsNumeric() && !t.TextUnmarshaler {
			usesRuntime = true
		}
	}
	for _, spec := range imports.Specs() {
		if spec.Path == g.config.RuntimeImport && !usesRuntime {
			continue
		}
		data.Imports = append(data.Imports, spec)
	}

	var buf bytes.Buffer
	if err := enumsTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	return buf.Bytes(), nil
}

// formatAll runs go/format over every file. A file that does not format is
// written next to the output as a .unformatted.go sidecar for inspection.
func (g *Generator) formatAll(ctx context.Context, raw []GeneratedFile) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, len(raw))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)

	for i, file := range raw {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			formatted, err := format.Source(file.Content)
			if err != nil {
				// Best-effort: the sidecar helps debugging, its own failure is not reported.
				_ = writeDebugUnformatted(g.config.OutputDir, file.Filename, file.Content)
				return errors.Wrapf(err, "formatting %s", file.Filename)
			}

			files[i] = GeneratedFile{Filename: file.Filename, Content: formatted}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// FileName returns the file holding unit name: "OrderItem" becomes
// "order_item_parser.go" and "Order_Meta" becomes "order_meta_parser.go".
func FileName(unit string) string {
	var b strings.Builder
	runes := []rune(unit)
	for i, r := range runes {
		switch {
		case r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			continue
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if (prevLower || nextLower) && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String() + "_parser.go"
}
