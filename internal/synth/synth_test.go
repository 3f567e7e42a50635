package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"treeparse/internal/analyze"
	"treeparse/internal/diagnostic"
	"treeparse/internal/registry"
)

const (
	testOutput  = "treeparse/internal/synth/testout"
	testRuntime = "treeparse/jsontree"
)

// fixture loads the sample packages once per test and analyzes root.
type fixture struct {
	loader  *analyze.Loader
	closure *analyze.Closure
	imports *ImportSet
	diags   *diagnostic.Diagnostics
	engine  *Engine
}

func newFixture(t *testing.T, root string, reg *registry.Registry) *fixture {
	t.Helper()

	loader := analyze.NewLoader()
	require.NoError(t, loader.Load("treeparse/store", "treeparse/warehouse"))

	var analyzerOpts []analyze.Option
	if reg != nil {
		analyzerOpts = append(analyzerOpts, analyze.WithOverrides(reg))
	}

	closure, err := analyze.NewAnalyzer(loader, analyzerOpts...).Analyze(root)
	require.NoError(t, err)

	f := &fixture{
		loader:  loader,
		closure: closure,
		imports: NewImportSet(testOutput),
		diags:   &diagnostic.Diagnostics{},
	}
	f.engine = NewEngine(closure, f.imports, testRuntime, WithRegistry(reg), WithDiagnostics(f.diags))
	return f
}

func (f *fixture) resolve(t *testing.T, name string) *analyze.TypeInfo {
	t.Helper()

	info, err := f.loader.Resolve(name)
	require.NoError(t, err)
	return info
}

func (f *fixture) field(t *testing.T, typeName, fieldName string) *analyze.FieldInfo {
	t.Helper()

	info := f.resolve(t, typeName)
	for i := range info.Fields {
		if info.Fields[i].Name == fieldName {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", typeName, fieldName)
	return nil
}

// fieldCode synthesizes one field block at depth zero.
func (f *fixture) fieldCode(t *testing.T, typeName, fieldName string) string {
	t.Helper()

	b := f.engine.NewBlock(0)
	f.engine.Field(b, f.field(t, typeName, fieldName))
	return b.String()
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

func customRegistry(t *testing.T, names ...string) *registry.Registry {
	t.Helper()

	reg := registry.New()
	for _, name := range names {
		require.NoError(t, reg.Add(registry.Location{
			TypeName:   name,
			Package:    "custom",
			ImportPath: "example.com/custom",
			File:       strings.ToLower(name) + "_parser.go",
		}))
	}

	return reg
}
