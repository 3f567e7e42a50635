package registry

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"treeparse/internal/modpath"
)

// FileSuffix marks files holding custom parsers.
const FileSuffix = "_parser.go"

var intoFunc = regexp.MustCompile(`^Parse(\w+)Into$`)

type discoverConfig struct {
	importPath string
	logger     *zap.SugaredLogger
}

// DiscoverOption configures Discover.
type DiscoverOption func(*discoverConfig)

// WithImportPath sets the import path of the scanned directory instead of
// deriving it from the enclosing go.mod.
func WithImportPath(path string) DiscoverOption {
	return func(c *discoverConfig) { c.importPath = path }
}

// WithLogger sets the logger used while scanning.
func WithLogger(logger *zap.SugaredLogger) DiscoverOption {
	return func(c *discoverConfig) { c.logger = logger }
}

// Discover scans dir for *_parser.go files and registers every top-level
// Parse<T>Into function found in them. A parser file declaring no such
// function registers the CamelCase form of its name instead, so
// geo_point_parser.go stands for GeoPoint.
//
// An empty dir yields an empty Registry.
func Discover(dir string, opts ...DiscoverOption) (*Registry, error) {
	cfg := discoverConfig{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := New()
	if dir == "" {
		return reg, nil
	}

	files, err := parserFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		cfg.logger.Debugw("no custom parsers", "dir", dir)
		return reg, nil
	}

	importPath := cfg.importPath
	if importPath == "" {
		importPath, err = modpath.ImportPath(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "import path of custom parsers in %s", dir)
		}
	}

	fset := token.NewFileSet()
	pkgName := ""
	for _, file := range files {
		f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, errors.Wrapf(err, "parse custom parser %s", file)
		}

		if pkgName == "" {
			pkgName = f.Name.Name
		} else if f.Name.Name != pkgName {
			return nil, errors.Newf("%s: package %s, expected %s", file, f.Name.Name, pkgName)
		}

		names := intoFuncs(f)
		if len(names) == 0 {
			fallback := camelCase(strings.TrimSuffix(filepath.Base(file), FileSuffix))
			cfg.logger.Warnw("custom parser file declares no Parse<T>Into function, using file name",
				"file", file, "type", fallback)
			names = []string{fallback}
		}

		for _, name := range names {
			loc := Location{
				TypeName:   name,
				Package:    pkgName,
				ImportPath: importPath,
				File:       file,
			}
			if err := reg.Add(loc); err != nil {
				return nil, err
			}
			cfg.logger.Debugw("registered custom parser", "type", name, "file", file)
		}
	}

	cfg.logger.Infow("discovered custom parsers", "dir", dir, "count", reg.Len())
	return reg, nil
}

func parserFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read custom parser dir")
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, FileSuffix) || strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)

	return files, nil
}

func intoFuncs(f *ast.File) []string {
	var names []string
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil {
			continue
		}

		if m := intoFunc.FindStringSubmatch(fn.Name.Name); m != nil {
			names = append(names, m[1])
		}
	}

	return names
}

// camelCase turns "geo_point" into "GeoPoint".
func camelCase(snake string) string {
	var b strings.Builder
	for _, part := range strings.Split(snake, "_") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}
