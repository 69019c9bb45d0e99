package generator

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/reflgen/internal/model"
)

const (
	reflectionPkg = model.ReflectionPkg
	serializerPkg = "github.com/cmmoran/reflgen/pkg/serializer"
	gjsonPkg      = "github.com/tidwall/gjson"
	jsonPkg       = "encoding/json"

	header = "Code generated by reflgen. DO NOT EDIT."

	DefaultReflectionSuffix = "_reflection.gen.go"
	DefaultSerializerSuffix = "_serializer.gen.go"
	ReflectionIndexFile     = "reflection_index.gen.go"
	SerializerIndexFile     = "serializer_index.gen.go"
)

// Output is one file to render. Path is where it belongs on disk.
type Output struct {
	Path string
	File *jen.File
}

// Generator emits code for schema modules. Generate is called once per
// module after the symbol table is complete; Finish emits package-wide files.
type Generator interface {
	Name() string
	Generate(mod *model.SchemaModule) (*Output, error)
	Finish() ([]*Output, error)
}

type settings struct {
	symbols *model.SymbolTable
	suffix  string
	logger  *slog.Logger

	// index package; Finish emits nothing when indexDir is empty
	indexDir     string
	indexPkgPath string
	indexPkgName string
}

type Option func(*settings)

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithSuffix replaces the per-file suffix appended to the source file stem.
func WithSuffix(suffix string) Option {
	return func(s *settings) {
		if suffix != "" {
			s.suffix = suffix
		}
	}
}

// WithIndex sets the directory, import path and name of the index package.
func WithIndex(dir, pkgPath, pkgName string) Option {
	return func(s *settings) {
		s.indexDir = dir
		s.indexPkgPath = pkgPath
		s.indexPkgName = pkgName
	}
}

func newSettings(symbols *model.SymbolTable, suffix string, opts []Option) *settings {
	s := &settings{
		symbols: symbols,
		suffix:  suffix,
		logger:  slog.Default(),
	}
	if s.symbols == nil {
		s.symbols = model.NewSymbolTable()
	}
	for _, fn := range opts {
		fn(s)
	}
	if s.indexPkgName == "" && s.indexPkgPath != "" {
		s.indexPkgName = PackageName(s.indexPkgPath)
	}
	return s
}

func (s *settings) outputPath(src string) string {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(filepath.Dir(src), stem+s.suffix)
}

func (s *settings) indexFile(name string) *Output {
	f := jen.NewFilePathName(s.indexPkgPath, s.indexPkgName)
	f.HeaderComment(header)
	return &Output{Path: filepath.Join(s.indexDir, name), File: f}
}

func newFile(mod *model.SchemaModule) *jen.File {
	f := jen.NewFilePathName(mod.PkgPath, mod.PkgName)
	f.HeaderComment(header)
	return f
}

// PackageName derives a package identifier from the last element of an
// import path.
func PackageName(pkgPath string) string {
	base := pkgPath
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = "index" + name
	}
	return name
}

// typeCode spells t for generated code in the package of the source file.
func typeCode(t *model.TypeRef) jen.Code {
	switch t.Kind {
	case model.KindBuiltin:
		return jen.Id(t.Name)
	case model.KindNamed:
		if t.PkgPath != "" {
			return jen.Qual(t.PkgPath, t.Name)
		}
		return jen.Id(t.Name)
	case model.KindPointer:
		return jen.Op("*").Add(typeCode(t.Elem))
	case model.KindSlice:
		return jen.Index().Add(typeCode(t.Elem))
	case model.KindPolymorphic:
		return jen.Qual(reflectionPkg, "Ptr").Types(typeCode(t.Elem))
	}
	return jen.Id(t.Spelling)
}

// spellable reports whether typeCode can render t without an import the
// generated file does not know about.
func spellable(t *model.TypeRef) bool {
	ok := true
	t.Walk(func(n *model.TypeRef) {
		switch n.Kind {
		case model.KindNamed:
			if n.PkgAlias != "" && n.PkgPath == "" {
				ok = false
			}
		case model.KindUnsupported, model.KindInvalid:
			if strings.Contains(n.Spelling, ".") {
				ok = false
			}
		}
	})
	return ok
}

// unique returns names without repeats, keeping the first occurrence.
func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func litStrings(names []string) []jen.Code {
	out := make([]jen.Code, len(names))
	for i, n := range names {
		out[i] = jen.Lit(n)
	}
	return out
}
