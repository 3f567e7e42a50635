package analyze

import (
	"strconv"
	"strings"
)

// Describe renders t the way it reads in Go source, qualified by package name:
//   - "store.Order" for a named type
//   - "[]*store.OrderItem" for a slice of pointers
//   - "map[store.SKU]int" for a map
//   - "struct{...}" for an anonymous struct
func Describe(t *TypeInfo) string {
	var b strings.Builder
	describe(&b, t)
	return b.String()
}

func describe(b *strings.Builder, t *TypeInfo) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}

	if t.IsNamed() {
		if t.PkgName != "" {
			b.WriteString(t.PkgName)
			b.WriteByte('.')
		}
		b.WriteString(t.ID.Name)
		return
	}

	switch t.Kind {
	case TypeKindBasic:
		b.WriteString(t.Basic.String())
	case TypeKindPointer:
		b.WriteByte('*')
		describe(b, t.Elem)
	case TypeKindSlice:
		b.WriteString("[]")
		describe(b, t.Elem)
	case TypeKindArray:
		b.WriteString("[" + strconv.FormatInt(t.Len, 10) + "]")
		describe(b, t.Elem)
	case TypeKindMap:
		b.WriteString("map[")
		describe(b, t.Key)
		b.WriteByte(']')
		describe(b, t.Elem)
	case TypeKindStruct:
		b.WriteString("struct{...}")
	case TypeKindInterface:
		if t.Empty {
			b.WriteString("any")
		} else {
			b.WriteString("interface{...}")
		}
	default:
		if t.GoType != nil {
			b.WriteString(t.GoType.String())
		} else {
			b.WriteString(t.Kind.String())
		}
	}
}
