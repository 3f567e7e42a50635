package jsontree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "a"))

	base := &TypeError{Expected: "number", Got: "string"}
	assert.Same(t, error(base), Wrap(base))

	inner := Wrap(base, "price")
	outer := Wrap(inner, "items", Index(2))

	var pathErr *PathError
	require.ErrorAs(t, outer, &pathErr)
	assert.Equal(t, []string{"items", "[2]", "price"}, pathErr.Path)
	assert.Equal(t, "items[2].price: expected number, got string", outer.Error())

	var typeErr *TypeError
	assert.True(t, errors.As(outer, &typeErr))
}

func TestDiscriminator(t *testing.T) {
	kind, err := Discriminator(map[string]any{"_type": "TypeA"}, "_type")
	require.NoError(t, err)
	assert.Equal(t, "TypeA", kind)

	_, err = Discriminator(map[string]any{}, "_type")
	var discErr *DiscriminatorError
	require.ErrorAs(t, err, &discErr)
	assert.Equal(t, "missing", discErr.Reason)

	_, err = Discriminator(map[string]any{"_type": true}, "_type")
	require.ErrorAs(t, err, &discErr)
	assert.Equal(t, `discriminator "_type": expected string, got boolean`, err.Error())

	_, err = Discriminator("x", "_type")
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestUnknownSubtypeError(t *testing.T) {
	err := &UnknownSubtypeError{Base: "PaymentMethod", Field: "_type", Value: "TypeC", Known: []string{"TypeA", "TypeB"}}
	assert.Equal(t, `unknown PaymentMethod subtype "TypeC" in field "_type" (known: TypeA, TypeB)`, err.Error())
}
