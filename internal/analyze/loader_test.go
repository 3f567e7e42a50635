package analyze

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeparse/primitive"
)

func loadFixtures(t *testing.T) *Loader {
	t.Helper()

	loader := NewLoader()
	require.NoError(t, loader.Load("treeparse/store", "treeparse/warehouse"))
	return loader
}

func resolve(t *testing.T, loader *Loader, name string) *TypeInfo {
	t.Helper()

	info, err := loader.Resolve(name)
	require.NoError(t, err)
	require.NotNil(t, info)
	return info
}

func field(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)
	return nil
}

func TestLoader_Packages(t *testing.T) {
	loader := loadFixtures(t)

	var paths []string
	for _, pkg := range loader.Packages() {
		paths = append(paths, pkg.PkgPath)
	}
	assert.Equal(t, []string{"treeparse/store", "treeparse/warehouse"}, paths)

	names := loader.TypeNames()
	assert.Contains(t, names, "treeparse/store.Order")
	assert.Contains(t, names, "treeparse/warehouse.Order")
}

func TestLoader_StoreOrderFields(t *testing.T) {
	loader := loadFixtures(t)
	order := resolve(t, loader, "treeparse/store.Order")

	assert.Equal(t, TypeKindStruct, order.Kind)
	assert.Equal(t, TypeID{PkgPath: "treeparse/store", Name: "Order"}, order.ID)
	assert.Equal(t, "store", order.PkgName)

	audit := field(t, order, "Audit")
	assert.True(t, audit.Embedded)
	assert.True(t, audit.IsInline())

	status := field(t, order, "Status")
	assert.Equal(t, "status", status.JSONName())
	require.Equal(t, TypeKindEnum, status.Type.Kind)
	assert.Equal(t, []EnumValue{
		{Const: "StatusPending", Wire: "PENDING"},
		{Const: "StatusPaid", Wire: "PAID"},
		{Const: "StatusShipped", Wire: "SHIPPED"},
		{Const: "StatusCancelled", Wire: "CANCELLED"},
	}, status.Type.Enum)

	internal := field(t, order, "Internal")
	assert.True(t, internal.Ignored())

	note := field(t, order, "note")
	assert.False(t, note.Exported)
	assert.Same(t, order, note.Declaring)
}

func TestLoader_IntegerEnum(t *testing.T) {
	loader := loadFixtures(t)
	order := resolve(t, loader, "treeparse/store.Order")

	priority := field(t, order, "Priority")
	require.Equal(t, TypeKindPointer, priority.Type.Kind)

	enum := priority.Type.Elem
	require.Equal(t, TypeKindEnum, enum.Kind)
	assert.True(t, enum.IsNumeric())
	assert.Equal(t, primitive.KindInt, enum.Basic)
	assert.Equal(t, []EnumValue{
		{Const: "PriorityLow", Wire: "PriorityLow", Number: "0"},
		{Const: "PriorityNormal", Wire: "PriorityNormal", Number: "1"},
		{Const: "PriorityHigh", Wire: "PriorityHigh", Number: "2"},
	}, enum.Enum)
}

func TestLoader_InnerStruct(t *testing.T) {
	loader := loadFixtures(t)
	order := resolve(t, loader, "treeparse/store.Order")

	meta := field(t, order, "Meta").Type
	assert.True(t, meta.IsInner())
	assert.Same(t, order, meta.Enclosing)
	assert.Equal(t, "Meta", meta.EnclosingField)
	assert.Len(t, meta.Fields, 2)
}

func TestLoader_NamedKinds(t *testing.T) {
	loader := loadFixtures(t)

	sku := resolve(t, loader, "treeparse/store.SKU")
	assert.Equal(t, TypeKindAlias, sku.Kind)
	assert.True(t, sku.IsStringKinded())

	cents := resolve(t, loader, "treeparse/store.Cents")
	assert.Equal(t, TypeKindAlias, cents.Kind)
	assert.Equal(t, primitive.KindInt64, cents.Basic)

	region := resolve(t, loader, "treeparse/store.Region")
	assert.Equal(t, TypeKindStruct, region.Kind)
	assert.True(t, region.IsTextLeaf())

	brand := resolve(t, loader, "treeparse/store.CardBrand")
	assert.Equal(t, TypeKindEnum, brand.Kind)
	assert.True(t, brand.TextUnmarshaler)
	assert.False(t, brand.IsTextLeaf())

	flags := resolve(t, loader, "treeparse/store.Flags")
	require.Equal(t, TypeKindMap, flags.Kind)
	assert.True(t, flags.Elem.IsInner())
	assert.Empty(t, flags.Elem.Fields)

	customer := resolve(t, loader, "treeparse/store.Customer")
	lastIP := field(t, customer, "LastIP").Type
	assert.Equal(t, TypeID{PkgPath: "net/netip", Name: "Addr"}, lastIP.ID)
	assert.True(t, lastIP.IsTextLeaf())
}

func TestLoader_Polymorphism(t *testing.T) {
	loader := loadFixtures(t)
	payment := resolve(t, loader, "treeparse/store.PaymentMethod")

	require.Equal(t, TypeKindInterface, payment.Kind)
	require.NotNil(t, payment.Poly)
	assert.Equal(t, "_type", payment.Poly.Discriminator)
	assert.Equal(t, []string{"TypeA", "TypeB"}, payment.Poly.Names())

	card := payment.Poly.Subtypes[0]
	assert.Equal(t, "Card", card.TypeName)
	require.NotNil(t, card.Type)
	assert.Equal(t, "Card", card.Type.ID.Name)
	assert.True(t, card.Implements)
	assert.False(t, card.Pointer)
}

func TestLoader_ExcludedTypes(t *testing.T) {
	loader := loadFixtures(t)
	shipment := resolve(t, loader, "treeparse/warehouse.Shipment")

	assert.Equal(t, TypeKindExternal, field(t, shipment, "TrackingID").Type.Kind)
	assert.Equal(t, TypeKindExternal, field(t, shipment, "ShippedAt").Type.Kind)
	assert.Equal(t, TypeKindExternal, field(t, shipment, "Carrier").Type.Kind)
	assert.True(t, field(t, shipment, "Label").Type.Generic)
	assert.Equal(t, TypeKindUnknown, field(t, shipment, "Updates").Type.Kind)
}

func TestLoader_ResolveShortPackageName(t *testing.T) {
	loader := loadFixtures(t)

	byName := resolve(t, loader, "warehouse.Category")
	byPath := resolve(t, loader, "treeparse/warehouse.Category")
	assert.Same(t, byPath, byName)
}

func TestLoader_ResolveNotFound(t *testing.T) {
	loader := loadFixtures(t)

	_, err := loader.Resolve("treeparse/store.Ordr")
	var notFound *TypeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "treeparse/store.Ordr", notFound.Name)
	require.NotEmpty(t, notFound.Suggestions)
	assert.Equal(t, "treeparse/store.Order", notFound.Suggestions[0])
	assert.Contains(t, errors.FlattenHints(err), "did you mean treeparse/store.Order")

	_, err = loader.Resolve("Order")
	require.ErrorAs(t, err, &notFound)
}

func TestLoader_LoadUnknownPattern(t *testing.T) {
	loader := NewLoader()
	err := loader.Load("treeparse/does/not/exist")
	require.Error(t, err)
}
