package gen

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating
// it when needed. Up to workers files are written at once.
func WriteFiles(ctx context.Context, files []GeneratedFile, outputDir string, workers int) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for _, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outputPath := filepath.Join(outputDir, file.Filename)
			if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
				return errors.Wrapf(err, "writing file %s", file.Filename)
			}
			return nil
		})
	}

	return eg.Wait()
}

// Clean removes the generated Go files in dir, leaving hand-written files
// alone. A missing dir is not an error. It returns the removed file names.
func Clean(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading output directory")
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}

		p := filepath.Join(dir, e.Name())
		generated, err := IsGenerated(p)
		if err != nil {
			return removed, err
		}
		if !generated {
			continue
		}

		if err := os.Remove(p); err != nil {
			return removed, errors.Wrapf(err, "removing %s", e.Name())
		}
		removed = append(removed, e.Name())
	}

	return removed, nil
}

// IsGenerated reports whether the file at path carries Header.
func IsGenerated(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}

	return hasHeader(content), nil
}

// hasHeader looks for Header above the package clause, so the build-tagged
// debug sidecars are recognized too.
func hasHeader(content []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == Header {
			return true
		}
		if strings.HasPrefix(line, "package ") {
			return false
		}
	}

	return false
}
