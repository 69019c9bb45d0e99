package cursor

import (
	"reflect"
	"strconv"
	"strings"
)

// Kind classifies a declaration node.
type Kind int

const (
	KindInvalid Kind = iota
	KindTranslationUnit
	KindNamespace
	KindClass
	KindField
	KindBaseSpecifier
	KindMethod
	KindParam
	KindResult
)

var kindNames = map[Kind]string{
	KindInvalid:         "invalid",
	KindTranslationUnit: "translation_unit",
	KindNamespace:       "namespace",
	KindClass:           "class",
	KindField:           "field",
	KindBaseSpecifier:   "base_specifier",
	KindMethod:          "method",
	KindParam:           "param",
	KindResult:          "result",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

const (
	// DirectivePrefix marks annotation comments on types and methods:
	//
	//	//reflect:fields,methods
	DirectivePrefix = "reflect:"
	// TagKey is the struct tag key carrying field annotations.
	TagKey = "reflect"
)

// Cursor is a read-only view over one node of a parsed source file. A cursor
// is only valid while the TranslationUnit that produced it is open.
type Cursor interface {
	Kind() Kind
	// Spelling is the declared identifier (or the file path for a unit).
	Spelling() string
	// DisplayName is a human readable form, e.g. "Update() error" for methods.
	DisplayName() string
	SourceFile() string
	// Annotation is the raw annotation text, "" when the node has none.
	Annotation() string
	// TypeSpelling is the source text of the node's type for fields, bases,
	// params and results.
	TypeSpelling() string
	// IsDefinition is true for complete, non-generic struct declarations and
	// false for every other kind, methods included.
	IsDefinition() bool
	Children() []Cursor
}

// VisitResult steers Visit.
type VisitResult int

const (
	VisitBreak VisitResult = iota
	VisitContinue
	VisitRecurse
)

// Visit walks the children of c depth first. It returns false when fn asked
// to stop.
func Visit(c Cursor, fn func(c, parent Cursor) VisitResult) bool {
	for _, child := range c.Children() {
		switch fn(child, c) {
		case VisitBreak:
			return false
		case VisitRecurse:
			if !Visit(child, fn) {
				return false
			}
		}
	}
	return true
}

// TranslationUnit is one parsed source file.
type TranslationUnit struct {
	File    string
	PkgName string
	PkgPath string
	// Imports maps the local package name (alias or base name) to the import
	// path.
	Imports map[string]string
	Root    Cursor

	closer func()
}

// Close releases parser resources held by the unit.
func (tu *TranslationUnit) Close() {
	if tu.closer != nil {
		tu.closer()
		tu.closer = nil
	}
}

// directiveText extracts and joins every `//reflect:` line from a comment
// block.
func directiveText(lines []string) string {
	var parts []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if !strings.HasPrefix(l, "//") {
			continue
		}
		l = strings.TrimSpace(strings.TrimPrefix(l, "//"))
		if rest, ok := strings.CutPrefix(l, DirectivePrefix); ok {
			if rest = strings.TrimSpace(rest); rest != "" {
				parts = append(parts, rest)
			}
		}
	}
	return strings.Join(parts, ",")
}

// tagAnnotation returns the reflect key of a struct tag literal, quoted or raw.
func tagAnnotation(lit string) string {
	if lit == "" {
		return ""
	}
	raw, err := strconv.Unquote(lit)
	if err != nil {
		raw = strings.Trim(lit, "`\"")
	}
	return reflect.StructTag(raw).Get(TagKey)
}

// importName is the local name of an import: the explicit alias when given,
// otherwise the last path element.
func importName(alias, path string) string {
	if alias != "" && alias != "_" && alias != "." {
		return alias
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	// gopkg.in/yaml.v3 style
	if i := strings.Index(path, "."); i > 0 {
		path = path[:i]
	}
	return path
}

func skipFile(name string) bool {
	return strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, ".gen.go")
}

// leaf is a childless cursor used for params and results.
type leaf struct {
	kind     Kind
	spelling string
	typ      string
	file     string
}

func (l *leaf) Kind() Kind           { return l.kind }
func (l *leaf) Spelling() string     { return l.spelling }
func (l *leaf) DisplayName() string  { return strings.TrimSpace(l.spelling + " " + l.typ) }
func (l *leaf) SourceFile() string   { return l.file }
func (l *leaf) Annotation() string   { return "" }
func (l *leaf) TypeSpelling() string { return l.typ }
func (l *leaf) IsDefinition() bool   { return false }
func (l *leaf) Children() []Cursor   { return nil }

func methodDisplayName(name string, params, results []Cursor) string {
	types := func(cs []Cursor) string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.TypeSpelling()
		}
		return strings.Join(out, ", ")
	}
	s := name + "(" + types(params) + ")"
	switch len(results) {
	case 0:
	case 1:
		s += " " + types(results)
	default:
		s += " (" + types(results) + ")"
	}
	return s
}
