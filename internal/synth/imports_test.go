package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportSet_Add(t *testing.T) {
	s := NewImportSet("example.com/out")

	assert.Empty(t, s.Add("example.com/out", "out"))
	assert.Equal(t, "store", s.Add("example.com/a/store", "store"))
	assert.Equal(t, "store", s.Add("example.com/a/store", "store"), "repeated adds keep the alias")
	assert.Equal(t, "store2", s.Add("example.com/b/store", "store"))
	assert.Equal(t, "value2", s.Add("example.com/value", "value"), "reserved identifiers are never used as aliases")
	assert.Equal(t, "jsontree", s.Add("treeparse/jsontree", ""))

	assert.Equal(t, []ImportSpec{
		{Path: "example.com/a/store"},
		{Alias: "store2", Path: "example.com/b/store"},
		{Alias: "value2", Path: "example.com/value"},
		{Path: "treeparse/jsontree"},
	}, s.Specs())
}

func TestImportSet_TypeString(t *testing.T) {
	f := newFixture(t, "treeparse/store.Order", nil)

	assert.Equal(t, "map[store.OrderStatus]int", f.imports.TypeString(f.field(t, "treeparse/store.Order", "Counters").Type))
	assert.Equal(t, "any", f.imports.TypeString(nil))

	self := NewImportSet("treeparse/store")
	assert.Equal(t, "[]OrderItem", self.TypeString(f.field(t, "treeparse/store.Order", "Items").Type))
	assert.Empty(t, self.Specs())
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "Parse", qualify("", "Parse"))
	assert.Equal(t, "custom.Parse", qualify("custom", "Parse"))
}
