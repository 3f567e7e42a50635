package jsontree

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	addr, err := Text[netip.Addr]("192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.0.2.1"), addr)

	addr, err = Text[netip.Addr](nil)
	require.NoError(t, err)
	assert.False(t, addr.IsValid())

	_, err = Text[netip.Addr]("not an address")
	require.Error(t, err)

	_, err = Text[netip.Addr](json.Number("1"))
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "number", typeErr.Got)
}
