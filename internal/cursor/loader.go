package cursor

import (
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Frontend selects the parser behind the cursors.
type Frontend string

const (
	FrontendPackages   Frontend = "packages"
	FrontendGoParser   Frontend = "goparser"
	FrontendTreeSitter Frontend = "treesitter"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// Load parses every non-test, non-generated Go file matched by patterns
// (relative to dir) with the chosen frontend. Units are sorted by file path.
func Load(ctx context.Context, fe Frontend, dir string, patterns ...string) ([]*TranslationUnit, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	var (
		units []*TranslationUnit
		err   error
	)
	switch fe {
	case FrontendPackages, "":
		units, err = LoadPackages(ctx, dir, patterns...)
	case FrontendGoParser:
		units, err = LoadGoParser(ctx, dir, patterns...)
	case FrontendTreeSitter:
		units, err = LoadTreeSitter(ctx, dir, patterns...)
	default:
		return nil, fmt.Errorf("%q: %w", fe, ErrUnknownFrontend)
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(units, func(i, j int) bool { return units[i].File < units[j].File })
	return units, nil
}

// LoadPackages loads the patterns with golang.org/x/tools/go/packages.
func LoadPackages(ctx context.Context, dir string, patterns ...string) ([]*TranslationUnit, error) {
	fset := token.NewFileSet()
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:     dir,
		Fset:    fset,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var units []*TranslationUnit
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			slog.Warn("package error", "package", pkg.PkgPath, "error", perr.Msg)
		}
		for _, file := range pkg.Syntax {
			name := fset.Position(file.Package).Filename
			if skipFile(name) {
				continue
			}
			units = append(units, NewASTUnit(fset, file, pkg.PkgPath))
		}
	}
	return units, nil
}

// LoadGoParser parses files with go/parser directly, deriving import paths
// from go.mod. It does not need the go command.
func LoadGoParser(ctx context.Context, dir string, patterns ...string) ([]*TranslationUnit, error) {
	groups, err := discover(dir, patterns)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	var units []*TranslationUnit
	for _, g := range groups {
		for _, f := range g.files {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			file, perr := parser.ParseFile(fset, f, nil, parser.ParseComments)
			if perr != nil {
				slog.Warn("skipping unparsable file", "file", f, "error", perr)
				continue
			}
			units = append(units, NewASTUnit(fset, file, g.pkgPath))
		}
	}
	return units, nil
}

type fileGroup struct {
	dir     string
	pkgPath string
	files   []string
}

// discover resolves "./x", "./x/..." style patterns into per-directory file
// groups.
func discover(dir string, patterns []string) ([]fileGroup, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, pat := range patterns {
		recursive := false
		if rest, ok := strings.CutSuffix(pat, "..."); ok {
			recursive = true
			pat = strings.TrimSuffix(rest, "/")
			if pat == "" {
				pat = "."
			}
		}
		root := pat
		if !filepath.IsAbs(root) {
			root = filepath.Join(dir, pat)
		}
		if !recursive {
			if !seen[root] {
				seen[root] = true
				dirs = append(dirs, root)
			}
			continue
		}
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			name := d.Name()
			if p != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "testdata" || name == "vendor") {
				return filepath.SkipDir
			}
			if !seen[p] {
				seen[p] = true
				dirs = append(dirs, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	var groups []fileGroup
	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", d, err)
		}
		g := fileGroup{dir: d}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".go" || skipFile(e.Name()) {
				continue
			}
			g.files = append(g.files, filepath.Join(d, e.Name()))
		}
		if len(g.files) == 0 {
			continue
		}
		if g.pkgPath, err = ImportPath(d); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
