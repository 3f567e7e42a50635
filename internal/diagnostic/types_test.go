package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severities(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeEnumDrop, "unmatched values are dropped", "treeparse/store.Order", "Status")
	d.AddWarning(CodeTypeNotFound, "type could not be resolved", "treeparse/store.Order", "Legacy")

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError(CodeUnsupportedType, "time.Time is not supported", "treeparse/warehouse.Shipment", "ShippedAt")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s)")
	assert.Contains(t, err.Error(), "[treeparse/warehouse.Shipment] ShippedAt: [UNSUPPORTED_TYPE] time.Time is not supported")
}

func TestDiagnostics_MergeAndDedupe(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo(CodeCustomParser, "routed to custom parser", "treeparse/store.Address", "")
	b.AddInfo(CodeCustomParser, "routed to custom parser", "treeparse/store.Address", "")
	b.AddInfo(CodeEnumDrop, "unmatched values are dropped", "treeparse/store.Alpha", "Status")

	a.Merge(b)
	require.Len(t, a.Infos, 3)

	a.Dedupe()
	require.Len(t, a.Infos, 2)
	assert.Equal(t, "treeparse/store.Address", a.Infos[0].Type)
	assert.Len(t, a.ByCode(CodeEnumDrop), 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: CodeTypeNotFound, Message: "type Ordr not found", Suggestions: []string{"Order"}}
	assert.Equal(t, "[TYPE_NOT_FOUND] type Ordr not found (did you mean Order?)", d.String())

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
