package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_ReturnWrapsPath(t *testing.T) {
	b := NewBlock("rt", 0)
	assert.Equal(t, "return err", b.Return("err"))

	pop := b.Push(`"items"`)
	inner := b.Push("rt.Index(idx1)")
	assert.Equal(t, `return rt.Wrap(err, "items", rt.Index(idx1))`, b.Return("err"))

	inner()
	assert.Equal(t, `return rt.Wrap(err, "items")`, b.Return("err"))
	pop()
	assert.Equal(t, "return err", b.Return("err"))
}

func TestBlock_ChildSharesPath(t *testing.T) {
	b := NewBlock("rt", 1)
	b.Push("key1")

	child := b.Child()
	child.Linef("x := %d", 1)
	child.Fail("err")
	b.Append(child)

	assert.Equal(t, lines(
		"\t\tx := 1",
		"\t\tif err != nil {",
		"\t\t\treturn rt.Wrap(err, key1)",
		"\t\t}",
	), b.String())
}

func TestBlock_Uses(t *testing.T) {
	b := NewBlock("rt", 0)
	b.Linef("value1[idx10] = item1")

	assert.True(t, b.Uses("item1"))
	assert.True(t, b.Uses("idx10"))
	assert.False(t, b.Uses("idx1"))
	assert.False(t, NewBlock("rt", 0).Uses("x"))
}

func TestBlock_SkipAndComment(t *testing.T) {
	b := NewBlock("rt", 0)
	assert.True(t, b.Empty())

	b.Comment("%s: ignored", "Internal")
	b.Skip("matched1")

	assert.False(t, b.Empty())
	assert.Equal(t, []string{
		"// Internal: ignored",
		"if !matched1 {",
		"\tcontinue",
		"}",
	}, b.Lines())
}

func TestNamesAt(t *testing.T) {
	n := NamesAt(3)

	assert.Equal(t, "value3", n.Value)
	assert.Equal(t, "typedKey3", n.TypedKey)
	assert.Equal(t, "idx3", n.Idx)
	assert.Equal(t, "slot3", n.Slot)
}
