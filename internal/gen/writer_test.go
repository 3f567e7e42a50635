package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generated(name, body string) GeneratedFile {
	return GeneratedFile{Filename: name, Content: []byte(Header + "\n\npackage parsers\n" + body)}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), filePerm))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "parsers")
	files := []GeneratedFile{generated("a_parser.go", ""), generated("b_parser.go", "\nvar _ = 1\n")}

	require.NoError(t, WriteFiles(context.Background(), files, dir, 1))

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, content)
	}
}

func TestClean_KeepsHandWrittenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "order_parser.go", Header+"\n\npackage parsers\n")
	writeFile(t, dir, "order_parser.unformatted.go", "//go:build ignore\n\n"+Header+"\n\npackage parsers\n")
	writeFile(t, dir, "address_parser.go", "package parsers\n\n// "+Header+"\n")
	writeFile(t, dir, "notes.txt", Header)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), dirPerm))

	removed, err := Clean(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"order_parser.go", "order_parser.unformatted.go"}, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{"address_parser.go", "notes.txt", "sub"}, left)
}

func TestClean_MissingDir(t *testing.T) {
	removed, err := Clean(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestIsGenerated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gen.go", "// Some preamble\n"+Header+"\n\npackage x\n")
	writeFile(t, dir, "hand.go", "package x\n")

	ok, err := IsGenerated(filepath.Join(dir, "gen.go"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsGenerated(filepath.Join(dir, "hand.go"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsGenerated(filepath.Join(dir, "absent.go"))
	require.Error(t, err)
}
