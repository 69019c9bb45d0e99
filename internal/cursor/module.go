package cursor

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

var ErrNoModule = errors.New("no go.mod found")

// FindModule walks up from dir until it finds go.mod and returns the module
// root directory and module path.
func FindModule(dir string) (root, modPath string, err error) {
	from, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}
	for {
		gomod := filepath.Join(from, "go.mod")
		if data, rerr := os.ReadFile(gomod); rerr == nil {
			modPath = modfile.ModulePath(data)
			if modPath == "" {
				return "", "", fmt.Errorf("parse %s: missing module directive", gomod)
			}
			return from, modPath, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", "", fmt.Errorf("%s: %w", dir, ErrNoModule)
		}
		from = parent
	}
}

// ImportPath computes the import path of the package in dir from the
// enclosing module.
func ImportPath(dir string) (string, error) {
	root, modPath, err := FindModule(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return modPath, nil
	}
	return path.Join(modPath, filepath.ToSlash(rel)), nil
}
