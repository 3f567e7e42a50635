package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_UpToDate(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{generated("a_parser.go", "")}
	writeFile(t, dir, "a_parser.go", string(files[0].Content))
	writeFile(t, dir, "helpers.go", "package parsers\n")

	drifts, err := Check(files, dir)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestCheck_ReportsDrift(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		generated("a_parser.go", "\nvar a = 2\n"),
		generated("b_parser.go", ""),
	}
	writeFile(t, dir, "a_parser.go", string(generated("a_parser.go", "\nvar a = 1\n").Content))
	writeFile(t, dir, "old_parser.go", string(generated("old_parser.go", "").Content))
	writeFile(t, dir, "custom_parser.go", "package parsers\n")

	drifts, err := Check(files, dir)
	require.NoError(t, err)
	require.Len(t, drifts, 3)

	assert.Equal(t, "a_parser.go", drifts[0].Filename)
	assert.Equal(t, DriftModified, drifts[0].Kind)
	assert.Contains(t, drifts[0].Diff, "--- a/a_parser.go")
	assert.Contains(t, drifts[0].Diff, "+++ b/a_parser.go")
	assert.Contains(t, drifts[0].Diff, "-var a = 1")
	assert.Contains(t, drifts[0].Diff, "+var a = 2")

	assert.Equal(t, Drift{Filename: "b_parser.go", Kind: DriftMissing}, drifts[1])
	assert.Equal(t, Drift{Filename: "old_parser.go", Kind: DriftStale}, drifts[2])
}

func TestCheck_MissingOutputDir(t *testing.T) {
	drifts, err := Check([]GeneratedFile{generated("a_parser.go", "")}, t.TempDir()+"/absent")
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, DriftMissing, drifts[0].Kind)
}
