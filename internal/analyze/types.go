package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"treeparse/internal/common"
	"treeparse/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "treeparse/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type, named or anonymous
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // fixed-size array of another type
	TypeKindMap                // map from Key to Elem
	TypeKindInterface          // interface, polymorphic when Poly is set
	TypeKindEnum               // named string/integer type with declared constants
	TypeKindAlias              // named type over a basic kind, without constants
	TypeKindExternal           // excluded type (e.g., time.Time)
	TypeKindTypeParam          // type parameter of a generic declaration
	TypeKindInvalid            // type that failed to resolve
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindEnum:
		return "enum"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindTypeParam:
		return "typeparam"
	case TypeKindInvalid:
		return "invalid"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph. It is filled once by the
// Loader and not modified afterwards.
type TypeInfo struct {
	ID       TypeID             // Unique identifier (empty for unnamed types like *T or []T)
	Kind     TypeKind           // Kind of type
	PkgName  string             // Package name of named types, used for import aliases
	Exported bool               // Whether a named type is exported
	Basic    primitive.KindEnum // Basic kind for basic, alias and enum types
	Elem     *TypeInfo          // Element of pointers, slices, arrays; value of maps
	Key      *TypeInfo          // Key of maps
	Len      int64              // Length of arrays
	Fields   []FieldInfo        // For structs, every field in declaration order
	Enum     []EnumValue        // For enums, the exported constants
	Poly     *Polymorphism      // For interfaces with subtype directives
	Empty    bool               // For interfaces, whether the method set is empty

	// Enclosing and EnclosingField locate an anonymous struct: the type
	// declaring the first field it was found on.
	Enclosing      *TypeInfo
	EnclosingField string

	TextUnmarshaler bool       // *T implements encoding.TextUnmarshaler
	Generic         bool       // declared with or instantiated from type parameters
	GoType          types.Type // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsInner reports whether t is an anonymous struct, which gets a composite
// unit name derived from the field declaring it.
func (t *TypeInfo) IsInner() bool {
	return t.Kind == TypeKindStruct && !t.IsNamed()
}

// IsStringKinded reports whether values of t convert from a Go string.
func (t *TypeInfo) IsStringKinded() bool {
	return (t.Kind == TypeKindBasic || t.Kind == TypeKindAlias || t.Kind == TypeKindEnum) &&
		t.Basic == primitive.KindString
}

// IsTextLeaf reports whether t is a named non-enum type read from a JSON
// string through UnmarshalText rather than field by field.
func (t *TypeInfo) IsTextLeaf() bool {
	return t.IsNamed() && t.TextUnmarshaler && t.Kind != TypeKindEnum && t.Kind != TypeKindExternal
}

// EnumValue is one constant of an enum type.
type EnumValue struct {
	Const  string // constant identifier, e.g. "StatusPending"
	Wire   string // string matched on the wire: the value of string enums, the identifier of integer enums
	Number string // exact integer value of integer enums
}

// IsNumeric reports whether the enum has an integer underlying type.
func (t *TypeInfo) IsNumeric() bool {
	return t.Kind == TypeKindEnum && t.Basic.IsInteger()
}

// Polymorphism lists the concrete subtypes of an interface and the JSON field
// that selects between them.
type Polymorphism struct {
	Discriminator string
	Subtypes      []Subtype
}

// Subtype is one concrete implementation of a polymorphic interface.
type Subtype struct {
	Name       string    // discriminator value, e.g. "TypeA"
	TypeName   string    // type as written in the directive
	Type       *TypeInfo // nil when TypeName could not be resolved
	Pointer    bool      // only *Type implements the interface
	Implements bool      // Type or *Type implements the interface
}

// Names returns the discriminator values in declaration order.
func (p *Polymorphism) Names() []string {
	names := make([]string, len(p.Subtypes))
	for i, s := range p.Subtypes {
		names[i] = s.Name
	}

	return names
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name      string            // Go field name
	Exported  bool              // Whether the field is exported
	Type      *TypeInfo         // Field type
	Tag       reflect.StructTag // Raw struct tag
	Embedded  bool              // Whether the field is embedded (anonymous)
	Index     int               // Field index in the struct
	Declaring *TypeInfo         // Struct declaring the field
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || (name == "-" && !strings.HasPrefix(f.Tag.Get("json"), "-,")) {
		return f.Name
	}

	return name
}

// Ignored reports whether the field is excluded from parsing by a json:"-"
// or treeparse:"-" tag.
func (f *FieldInfo) Ignored() bool {
	return f.Tag.Get("json") == "-" || f.Tag.Get("treeparse") == "-"
}

// IsInline reports whether the field is an embedded struct whose fields are
// promoted into the enclosing JSON object, the way encoding/json treats it.
func (f *FieldInfo) IsInline() bool {
	if !f.Embedded {
		return false
	}

	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" {
		return false
	}

	t := f.Type
	if t.Kind == TypeKindPointer {
		t = t.Elem
	}

	return t.Kind == TypeKindStruct && t.IsNamed() && !t.IsTextLeaf()
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}
