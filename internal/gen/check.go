package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// DriftKind tells how an output file differs from a fresh generation.
type DriftKind string

const (
	DriftModified DriftKind = "modified"
	DriftMissing  DriftKind = "missing"
	DriftStale    DriftKind = "stale" // generated file no longer produced
)

// Drift is one out-of-date file of the output directory.
type Drift struct {
	Filename string
	Kind     DriftKind
	Diff     string // unified diff from the file on disk to the fresh content
}

// Check compares freshly generated files with outputDir and returns every
// difference. Hand-written files in outputDir are ignored.
func Check(files []GeneratedFile, outputDir string) ([]Drift, error) {
	var drifts []Drift
	expected := make(map[string]struct{}, len(files))

	for _, file := range files {
		expected[file.Filename] = struct{}{}

		current, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
		if errors.Is(err, os.ErrNotExist) {
			drifts = append(drifts, Drift{Filename: file.Filename, Kind: DriftMissing})
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file.Filename)
		}

		if bytes.Equal(current, file.Content) {
			continue
		}

		diff, err := unifiedDiff(file.Filename, current, file.Content)
		if err != nil {
			return nil, err
		}
		drifts = append(drifts, Drift{Filename: file.Filename, Kind: DriftModified, Diff: diff})
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "reading output directory")
	}
	for _, e := range entries {
		if _, ok := expected[e.Name()]; ok || e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}

		generated, err := IsGenerated(filepath.Join(outputDir, e.Name()))
		if err != nil {
			return nil, err
		}
		if generated {
			drifts = append(drifts, Drift{Filename: e.Name(), Kind: DriftStale})
		}
	}

	sort.Slice(drifts, func(i, j int) bool { return drifts[i].Filename < drifts[j].Filename })
	return drifts, nil
}

func unifiedDiff(name string, current, fresh []byte) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(fresh)),
		FromFile: filepath.Join("a", name),
		ToFile:   filepath.Join("b", name),
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrapf(err, "diffing %s", name)
	}

	return diff, nil
}
