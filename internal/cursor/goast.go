package cursor

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

// NewASTUnit wraps a parsed *ast.File. The file must have been parsed with
// comments for annotations to be visible.
func NewASTUnit(fset *token.FileSet, file *ast.File, pkgPath string) *TranslationUnit {
	path := fset.Position(file.Package).Filename
	tu := &TranslationUnit{
		File:    path,
		PkgName: file.Name.Name,
		PkgPath: pkgPath,
		Imports: make(map[string]string),
	}
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		alias := ""
		if imp.Name != nil {
			alias = imp.Name.Name
		}
		if alias == "_" || alias == "." {
			continue
		}
		tu.Imports[importName(alias, p)] = p
	}
	tu.Root = &astUnit{file: file, path: path}
	return tu
}

type astUnit struct {
	file *ast.File
	path string
}

func (u *astUnit) Kind() Kind           { return KindTranslationUnit }
func (u *astUnit) Spelling() string     { return u.path }
func (u *astUnit) DisplayName() string  { return u.path }
func (u *astUnit) SourceFile() string   { return u.path }
func (u *astUnit) Annotation() string   { return "" }
func (u *astUnit) TypeSpelling() string { return "" }
func (u *astUnit) IsDefinition() bool   { return false }
func (u *astUnit) Children() []Cursor {
	return []Cursor{&astNamespace{file: u.file, path: u.path}}
}

// astNamespace is the package clause; every top-level type lives below it.
type astNamespace struct {
	file *ast.File
	path string
}

func (n *astNamespace) Kind() Kind           { return KindNamespace }
func (n *astNamespace) Spelling() string     { return n.file.Name.Name }
func (n *astNamespace) DisplayName() string  { return n.file.Name.Name }
func (n *astNamespace) SourceFile() string   { return n.path }
func (n *astNamespace) Annotation() string   { return "" }
func (n *astNamespace) TypeSpelling() string { return "" }
func (n *astNamespace) IsDefinition() bool   { return false }

func (n *astNamespace) Children() []Cursor {
	methods := make(map[string][]*ast.FuncDecl)
	for _, decl := range n.file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
			continue
		}
		if recv := receiverName(fn.Recv.List[0].Type); recv != "" {
			methods[recv] = append(methods[recv], fn)
		}
	}

	var out []Cursor
	for _, decl := range n.file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			_, isStruct := ts.Type.(*ast.StructType)
			// named non-struct types (type Kind int) are not classes at all
			if !isStruct && !ts.Assign.IsValid() {
				continue
			}
			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			out = append(out, &astClass{
				spec:    ts,
				doc:     doc,
				path:    n.path,
				methods: methods[ts.Name.Name],
			})
		}
	}
	return out
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	}
	return ""
}

func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	out := make([]string, len(cg.List))
	for i, c := range cg.List {
		out[i] = c.Text
	}
	return out
}

type astClass struct {
	spec    *ast.TypeSpec
	doc     *ast.CommentGroup
	path    string
	methods []*ast.FuncDecl
}

func (c *astClass) Kind() Kind           { return KindClass }
func (c *astClass) Spelling() string     { return c.spec.Name.Name }
func (c *astClass) DisplayName() string  { return c.spec.Name.Name }
func (c *astClass) SourceFile() string   { return c.path }
func (c *astClass) Annotation() string   { return directiveText(commentLines(c.doc)) }
func (c *astClass) TypeSpelling() string { return "" }

func (c *astClass) IsDefinition() bool {
	if c.spec.Assign.IsValid() || c.spec.TypeParams != nil {
		return false
	}
	_, ok := c.spec.Type.(*ast.StructType)
	return ok
}

func (c *astClass) Children() []Cursor {
	st, ok := c.spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil
	}
	var out []Cursor
	for _, fld := range st.Fields.List {
		tag := ""
		if fld.Tag != nil {
			tag = fld.Tag.Value
		}
		if len(fld.Names) == 0 {
			// only value embeds act as bases
			if _, isPtr := fld.Type.(*ast.StarExpr); isPtr {
				continue
			}
			out = append(out, &astField{
				kind: KindBaseSpecifier,
				name: embeddedName(fld.Type),
				typ:  types.ExprString(fld.Type),
				tag:  tag,
				path: c.path,
			})
			continue
		}
		for _, id := range fld.Names {
			if id.Name == "_" {
				continue
			}
			out = append(out, &astField{
				kind: KindField,
				name: id.Name,
				typ:  types.ExprString(fld.Type),
				tag:  tag,
				path: c.path,
			})
		}
	}
	for _, fn := range c.methods {
		out = append(out, newASTMethod(fn, c.path))
	}
	return out
}

func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	}
	return ""
}

// astField backs both fields and base specifiers.
type astField struct {
	kind Kind
	name string
	typ  string
	tag  string
	path string
}

func (f *astField) Kind() Kind           { return f.kind }
func (f *astField) Spelling() string     { return f.name }
func (f *astField) DisplayName() string  { return f.name }
func (f *astField) SourceFile() string   { return f.path }
func (f *astField) Annotation() string   { return tagAnnotation(f.tag) }
func (f *astField) TypeSpelling() string { return f.typ }
func (f *astField) IsDefinition() bool   { return false }
func (f *astField) Children() []Cursor   { return nil }

type astMethod struct {
	fn       *ast.FuncDecl
	path     string
	children []Cursor
	params   []Cursor
	results  []Cursor
}

func newASTMethod(fn *ast.FuncDecl, path string) *astMethod {
	m := &astMethod{fn: fn, path: path}
	m.params = fieldListLeaves(fn.Type.Params, KindParam, path)
	m.results = fieldListLeaves(fn.Type.Results, KindResult, path)
	m.children = append(append([]Cursor{}, m.params...), m.results...)
	return m
}

func fieldListLeaves(fl *ast.FieldList, kind Kind, path string) []Cursor {
	if fl == nil {
		return nil
	}
	var out []Cursor
	for _, f := range fl.List {
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			out = append(out, &leaf{kind: kind, typ: typ, file: path})
			continue
		}
		for _, id := range f.Names {
			out = append(out, &leaf{kind: kind, spelling: id.Name, typ: typ, file: path})
		}
	}
	return out
}

func (m *astMethod) Kind() Kind       { return KindMethod }
func (m *astMethod) Spelling() string { return m.fn.Name.Name }
func (m *astMethod) DisplayName() string {
	return methodDisplayName(m.fn.Name.Name, m.params, m.results)
}
func (m *astMethod) SourceFile() string { return m.path }
func (m *astMethod) Annotation() string { return directiveText(commentLines(m.fn.Doc)) }
func (m *astMethod) TypeSpelling() string {
	return strings.TrimPrefix(m.DisplayName(), m.fn.Name.Name)
}
func (m *astMethod) IsDefinition() bool { return false }
func (m *astMethod) Children() []Cursor { return m.children }
