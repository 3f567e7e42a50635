package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"treeparse/primitive"
)

func TestExclusionReason(t *testing.T) {
	tests := []struct {
		id       TypeID
		excluded bool
	}{
		{TypeID{PkgPath: "time", Name: "Time"}, true},
		{TypeID{PkgPath: "time", Name: "Duration"}, true},
		{TypeID{PkgPath: "math/big", Name: "Float"}, true},
		{TypeID{PkgPath: "github.com/google/uuid", Name: "UUID"}, true},
		{TypeID{PkgPath: "database/sql", Name: "NullString"}, true},
		{TypeID{PkgPath: "database/sql", Name: "NullInt64"}, true},
		{TypeID{PkgPath: "container/list", Name: "List"}, true},
		{TypeID{PkgPath: "database/sql", Name: "DB"}, false},
		{TypeID{PkgPath: "net/netip", Name: "Addr"}, false},
		{TypeID{PkgPath: "treeparse/store", Name: "Order"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			reason, ok := ExclusionReason(tt.id)
			assert.Equal(t, tt.excluded, ok)
			assert.Equal(t, tt.excluded, reason != "")
			assert.Equal(t, tt.excluded, IsExcluded(tt.id))
		})
	}
}

func TestClassify(t *testing.T) {
	basic := &TypeInfo{Kind: TypeKindBasic, Basic: primitive.KindInt}
	alias := &TypeInfo{ID: TypeID{PkgPath: "p", Name: "SKU"}, Kind: TypeKindAlias, Basic: primitive.KindString}
	named := &TypeInfo{ID: TypeID{PkgPath: "p", Name: "Order"}, Kind: TypeKindStruct}

	tests := []struct {
		name string
		t    *TypeInfo
		want Class
	}{
		{"nil", nil, ClassNone},
		{"basic", basic, ClassPrimitive},
		{"alias", alias, ClassPrimitive},
		{"enum", &TypeInfo{ID: TypeID{Name: "Status"}, Kind: TypeKindEnum}, ClassNone},
		{"pointer to basic", &TypeInfo{Kind: TypeKindPointer, Elem: basic}, ClassWrapper},
		{"pointer to alias", &TypeInfo{Kind: TypeKindPointer, Elem: alias}, ClassWrapper},
		{"pointer to struct", &TypeInfo{Kind: TypeKindPointer, Elem: named}, ClassNone},
		{"any", &TypeInfo{Kind: TypeKindInterface, Empty: true}, ClassUniversal},
		{"named empty interface", &TypeInfo{ID: TypeID{Name: "Marker"}, Kind: TypeKindInterface, Empty: true}, ClassNone},
		{"external", &TypeInfo{ID: TypeID{PkgPath: "time", Name: "Time"}, Kind: TypeKindExternal}, ClassExcluded},
		{"struct", named, ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.t))
			assert.Equal(t, tt.want == ClassPrimitive, IsPrimitive(tt.t))
		})
	}
}
