package analyze

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"treeparse/internal/common"
	"treeparse/internal/diagnostic"
	"treeparse/internal/match"
	"treeparse/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and extracts TypeInfo descriptions from them.
// Types of imported packages are described from export data; only loaded
// packages contribute doc comment directives.
type Loader struct {
	dir       string
	logger    *zap.SugaredLogger
	pkgs      map[string]*packages.Package
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	docs      map[*types.TypeName][]string
	diags     diagnostic.Diagnostics
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDir sets the directory package patterns are resolved from.
func WithDir(dir string) LoaderOption {
	return func(l *Loader) { l.dir = dir }
}

// WithLoaderLogger sets the logger; the default discards everything.
func WithLoaderLogger(logger *zap.SugaredLogger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a new Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger:    zap.NewNop().Sugar(),
		pkgs:      make(map[string]*packages.Package),
		typeCache: make(map[types.Type]*TypeInfo),
		docs:      make(map[*types.TypeName][]string),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads the packages matching patterns, e.g. "./store" or "treeparse/warehouse".
// Patterns that match nothing fail the load; type errors inside a package are
// recorded as warnings and the types that did resolve stay usable.
func (l *Loader) Load(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return errors.Wrap(err, "loading packages")
	}

	var listErrs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.ListError || pkg.Types == nil {
				listErrs = append(listErrs, e.Error())
				continue
			}

			l.diags.AddWarning(diagnostic.CodePackageError, e.Error(), pkg.PkgPath, "")
			l.logger.Warnw("package has errors", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	if len(listErrs) > 0 {
		return errors.Newf("package errors: %s", strings.Join(listErrs, "; "))
	}

	for _, pkg := range pkgs {
		l.pkgs[pkg.PkgPath] = pkg
		l.indexDocs(pkg)
		l.logger.Debugw("loaded package", "package", pkg.PkgPath, "files", len(pkg.GoFiles))
	}

	return nil
}

// Packages returns the loaded packages sorted by import path.
func (l *Loader) Packages() []*packages.Package {
	out := make([]*packages.Package, 0, len(l.pkgs))
	for _, pkg := range l.pkgs {
		out = append(out, pkg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PkgPath < out[j].PkgPath })
	return out
}

// Diagnostics returns a copy of the warnings collected while loading.
func (l *Loader) Diagnostics() diagnostic.Diagnostics {
	var out diagnostic.Diagnostics
	out.Merge(l.diags)
	return out
}

// Resolve finds a named type by "import/path.Name". The package part may also
// be the bare name of a loaded package when that name is unambiguous.
func (l *Loader) Resolve(qualified string) (*TypeInfo, error) {
	pkgPath, name, ok := SplitTypeName(qualified)
	if !ok {
		return nil, errors.WithHint(&TypeNotFoundError{Name: qualified},
			"root types are written as import/path.TypeName")
	}

	pkg := l.pkgs[pkgPath]
	if pkg == nil {
		pkg = l.packageByName(pkgPath)
	}

	if pkg != nil && pkg.Types != nil {
		if obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
			return l.Info(obj.Type()), nil
		}
	}

	notFound := &TypeNotFoundError{Name: qualified}
	notFound.Suggestions = match.Suggest(qualified, l.TypeNames(), 3)
	if len(notFound.Suggestions) > 0 {
		return nil, errors.WithHintf(notFound, "did you mean %s?", strings.Join(notFound.Suggestions, " or "))
	}

	return nil, notFound
}

func (l *Loader) packageByName(name string) *packages.Package {
	var found *packages.Package
	for _, pkg := range l.pkgs {
		if pkg.Name != name {
			continue
		}
		if found != nil {
			return nil
		}
		found = pkg
	}

	return found
}

// TypeNames lists the qualified names of every type declared in the loaded packages.
func (l *Loader) TypeNames() []string {
	var names []string
	for path, pkg := range l.pkgs {
		if pkg.Types == nil {
			continue
		}
		for _, name := range pkg.Types.Scope().Names() {
			if _, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
				names = append(names, path+"."+name)
			}
		}
	}

	sort.Strings(names)
	return names
}

// indexDocs remembers the doc comment lines of every type declaration, where
// //treeparse: directives live.
func (l *Loader) indexDocs(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				var lines []string
				for _, group := range []*ast.CommentGroup{gd.Doc, ts.Doc} {
					if group == nil || (group == gd.Doc && common.IsMultiple(gd.Specs)) {
						continue
					}
					for _, c := range group.List {
						lines = append(lines, c.Text)
					}
				}

				if len(lines) > 0 {
					l.docs[obj] = lines
				}
			}
		}
	}
}

// Info analyzes a go/types.Type and returns its TypeInfo.
func (l *Loader) Info(t types.Type) *TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := l.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	l.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		l.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Basic = primitive.FromBasic(tt)
		switch {
		case tt.Kind() == types.Invalid:
			info.Kind = TypeKindInvalid
		case info.Basic.IsValid():
			info.Kind = TypeKindBasic
		default:
			info.Kind = TypeKindUnknown
		}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.Elem = l.Info(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.Elem = l.Info(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.Len = tt.Len()
		info.Elem = l.Info(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.Key = l.Info(tt.Key())
		info.Elem = l.Info(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		l.analyzeStructFields(tt, info)

	case *types.Interface:
		info.Kind = TypeKindInterface
		info.Empty = tt.Empty()

	case *types.TypeParam:
		info.Kind = TypeKindTypeParam

	default:
		// Channels, functions and tuples have no JSON reading.
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (l *Loader) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// error and comparable live in the universe scope.
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindUnknown
		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}
	info.PkgName = obj.Pkg().Name()
	info.Exported = obj.Exported()
	info.Generic = named.TypeParams().Len() > 0 || named.TypeArgs().Len() > 0

	if IsExcluded(info.ID) {
		info.Kind = TypeKindExternal
		return
	}

	info.TextUnmarshaler = types.Implements(types.NewPointer(named), textUnmarshaler)

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		l.analyzeStructFields(ut, info)

	case *types.Basic:
		info.Basic = primitive.FromBasic(ut)
		switch {
		case !info.Basic.IsValid():
			info.Kind = TypeKindUnknown
		case info.Basic == primitive.KindString || info.Basic.IsInteger():
			info.Enum = enumValues(named)
			info.Kind = TypeKindAlias
			if len(info.Enum) > 0 {
				info.Kind = TypeKindEnum
			}
		default:
			info.Kind = TypeKindAlias
		}

	case *types.Interface:
		info.Kind = TypeKindInterface
		info.Empty = ut.Empty()
		info.Poly = l.polymorphism(obj, ut)

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.Elem = l.Info(ut.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.Elem = l.Info(ut.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.Len = ut.Len()
		info.Elem = l.Info(ut.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.Key = l.Info(ut.Key())
		info.Elem = l.Info(ut.Elem())

	default:
		info.Kind = TypeKindUnknown
	}
}

// analyzeStructFields extracts every field of a struct type. Unexported fields
// are kept so anonymous structs can be rendered exactly; the analyzer skips them.
func (l *Loader) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		fieldInfo := FieldInfo{
			Name:      field.Name(),
			Exported:  field.Exported(),
			Type:      l.Info(field.Type()),
			Tag:       reflect.StructTag(st.Tag(i)),
			Embedded:  field.Embedded(),
			Index:     i,
			Declaring: info,
		}

		adoptInner(fieldInfo.Type, info, field.Name())
		info.Fields = append(info.Fields, fieldInfo)
	}
}

// adoptInner records the first declaring field of an anonymous struct found
// directly or inside unnamed containers of a field type.
func adoptInner(t, enclosing *TypeInfo, field string) {
	for t != nil {
		if t.IsNamed() {
			return
		}

		switch t.Kind {
		case TypeKindPointer, TypeKindSlice, TypeKindArray, TypeKindMap:
			t = t.Elem
		case TypeKindStruct:
			if t.Enclosing == nil {
				t.Enclosing = enclosing
				t.EnclosingField = field
			}
			return
		default:
			return
		}
	}
}

// enumValues collects the exported constants of exactly the named type, in
// declaration order, one per distinct value.
func enumValues(named *types.Named) []EnumValue {
	obj := named.Obj()
	scope := obj.Pkg().Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() || !types.Identical(c.Type(), named) {
			continue
		}
		consts = append(consts, c)
	}

	sort.SliceStable(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	isString := primitive.FromType(named) == primitive.KindString
	seen := make(map[string]struct{}, len(consts))

	var values []EnumValue
	for _, c := range consts {
		v := EnumValue{Const: c.Name(), Wire: c.Name()}
		key := c.Val().ExactString()
		if isString {
			v.Wire = constant.StringVal(c.Val())
			key = v.Wire
		} else {
			v.Number = key
		}

		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, v)
	}

	return values
}

// polymorphism reads the subtype directives declared on an interface.
func (l *Loader) polymorphism(obj *types.TypeName, iface *types.Interface) *Polymorphism {
	lines, ok := l.docs[obj]
	if !ok {
		return nil
	}

	d, err := ParseDirectives(lines)
	if err != nil {
		l.diags.AddWarning(diagnostic.CodeUnsupportedType, err.Error(), typeKey(obj), "")
	}

	if common.IsEmpty(d.Subtypes) {
		return nil
	}

	poly := &Polymorphism{Discriminator: d.Discriminator}
	for _, sd := range d.Subtypes {
		sub := Subtype{Name: sd.Name, TypeName: sd.Type}

		if tn := l.lookupTypeName(obj.Pkg(), sd.Type); tn != nil {
			sub.Type = l.Info(tn.Type())
			switch {
			case types.Implements(tn.Type(), iface):
				sub.Implements = true
			case types.Implements(types.NewPointer(tn.Type()), iface):
				sub.Implements = true
				sub.Pointer = true
			}
		}

		poly.Subtypes = append(poly.Subtypes, sub)
	}

	return poly
}

// lookupTypeName resolves a type name written in a directive, either local to
// pkg or qualified with a loaded package path.
func (l *Loader) lookupTypeName(pkg *types.Package, name string) *types.TypeName {
	scope := pkg.Scope()
	if pkgPath, short, ok := SplitTypeName(name); ok {
		loaded := l.pkgs[pkgPath]
		if loaded == nil || loaded.Types == nil {
			return nil
		}
		scope, name = loaded.Types.Scope(), short
	}

	tn, _ := scope.Lookup(name).(*types.TypeName)
	return tn
}

func typeKey(obj *types.TypeName) string {
	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}.String()
}

// textUnmarshaler mirrors encoding.TextUnmarshaler without loading package encoding.
var textUnmarshaler = func() *types.Interface {
	byteSlice := types.NewSlice(types.Typ[types.Byte])
	params := types.NewTuple(types.NewVar(token.NoPos, nil, "text", byteSlice))
	results := types.NewTuple(types.NewVar(token.NoPos, nil, "", types.Universe.Lookup("error").Type()))
	sig := types.NewSignatureType(nil, nil, nil, params, results, false)
	method := types.NewFunc(token.NoPos, nil, "UnmarshalText", sig)

	return types.NewInterfaceType([]*types.Func{method}, nil).Complete()
}()
