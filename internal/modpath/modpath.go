// Package modpath maps directories to Go import paths through the nearest go.mod.
package modpath

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/mod/modfile"
)

// Module is a go.mod found on disk.
type Module struct {
	Path    string // module path declared in go.mod
	RootDir string // directory holding go.mod
}

// FindModule walks up from dir to the first directory containing go.mod.
func FindModule(dir string) (Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Module{}, errors.Wrapf(err, "resolve %s", dir)
	}

	for current := abs; ; {
		goMod := filepath.Join(current, "go.mod")
		content, err := os.ReadFile(goMod)
		switch {
		case err == nil:
			modPath := modfile.ModulePath(content)
			if modPath == "" {
				return Module{}, errors.Newf("%s declares no module path", goMod)
			}
			return Module{Path: modPath, RootDir: current}, nil
		case !errors.Is(err, os.ErrNotExist):
			return Module{}, errors.Wrapf(err, "read %s", goMod)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Module{}, errors.Newf("go.mod not found in or above %s", abs)
		}
		current = parent
	}
}

// ImportPath returns the import path of the package in dir.
func ImportPath(dir string) (string, error) {
	mod, err := FindModule(dir)
	if err != nil {
		return "", err
	}

	return mod.ImportPath(dir)
}

// ImportPath returns the import path of dir, which must lie inside the module.
func (m Module) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", dir)
	}

	rel, err := filepath.Rel(m.RootDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf("%s is outside module %s", abs, m.Path)
	}

	if rel == "." {
		return m.Path, nil
	}

	return path.Join(m.Path, filepath.ToSlash(rel)), nil
}
