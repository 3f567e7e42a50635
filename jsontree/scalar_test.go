package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cents int64

type level int8

type label string

func TestInt(t *testing.T) {
	v, err := Int[int](json.Number("42"))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	c, err := Int[cents](json.Number("-7"))
	require.NoError(t, err)
	assert.Equal(t, cents(-7), c)

	v, err = Int[int](json.Number("3.0"))
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = Int[int](nil)
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = Int[int](float64(12))
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestInt_Errors(t *testing.T) {
	_, err := Int[level](json.Number("300"))
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "300", rangeErr.Value)

	_, err = Int[int](json.Number("1.5"))
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "integer", typeErr.Expected)

	_, err = Int[int]("12")
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "string", typeErr.Got)
}

func TestUint(t *testing.T) {
	v, err := Uint[uint64](json.Number("18446744073709551615"))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)

	_, err = Uint[uint](json.Number("-1"))
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = Uint[uint8](json.Number("256"))
	require.ErrorAs(t, err, &rangeErr)
}

func TestFloat(t *testing.T) {
	f, err := Float[float64](json.Number("2.5"))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)

	f32, err := Float[float32](json.Number("1e3"))
	require.NoError(t, err)
	assert.InDelta(t, float32(1000), f32, 1e-3)

	_, err = Float[float32](json.Number("1e300"))
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestStringAndBool(t *testing.T) {
	s, err := String[label]("hi")
	require.NoError(t, err)
	assert.Equal(t, label("hi"), s)

	s, err = String[label](nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = String[string](json.Number("1"))
	require.Error(t, err)

	b, err := Bool[bool](true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Bool[bool]("true")
	require.Error(t, err)
}

func TestBytes(t *testing.T) {
	b, err := Bytes[[]byte]("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)

	b, err = Bytes[[]byte](nil)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = Bytes[[]byte]("!!")
	require.Error(t, err)
}

func TestEnumText(t *testing.T) {
	text, ok := EnumText("HIGH")
	assert.True(t, ok)
	assert.Equal(t, "HIGH", text)

	text, ok = EnumText(json.Number("2"))
	assert.True(t, ok)
	assert.Equal(t, "2", text)

	_, ok = EnumText(json.Number("2.5"))
	assert.False(t, ok)

	_, ok = EnumText(nil)
	assert.False(t, ok)

	_, ok = EnumText(map[string]any{})
	assert.False(t, ok)
}
