package cursor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

var goLanguage = sitter.NewLanguage(tree_sitter_go.Language())

// LoadTreeSitter parses files with the tree-sitter Go grammar. Units keep
// their syntax tree alive until Close is called.
func LoadTreeSitter(ctx context.Context, dir string, patterns ...string) ([]*TranslationUnit, error) {
	groups, err := discover(dir, patterns)
	if err != nil {
		return nil, err
	}
	p := sitter.NewParser()
	defer p.Close()
	if err = p.SetLanguage(goLanguage); err != nil {
		return nil, fmt.Errorf("tree-sitter language: %w", err)
	}

	var units []*TranslationUnit
	for _, g := range groups {
		for _, f := range g.files {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			src, rerr := os.ReadFile(f)
			if rerr != nil {
				return nil, fmt.Errorf("read %s: %w", f, rerr)
			}
			tu, perr := ParseTreeSitter(p, f, src, g.pkgPath)
			if perr != nil {
				slog.Warn("skipping unparsable file", "file", f, "error", perr)
				continue
			}
			units = append(units, tu)
		}
	}
	return units, nil
}

// ParseTreeSitter parses src with an already configured parser.
func ParseTreeSitter(p *sitter.Parser, path string, src []byte, pkgPath string) (*TranslationUnit, error) {
	tree := p.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter failed to parse %s", path)
	}
	root := tree.RootNode()
	if root.HasError() {
		tree.Close()
		return nil, fmt.Errorf("syntax error in %s", path)
	}

	f := &tsFile{src: src, path: path}
	tu := &TranslationUnit{
		File:    path,
		PkgPath: pkgPath,
		Imports: make(map[string]string),
		Root:    &tsUnit{node: root, file: f},
		closer:  tree.Close,
	}
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		case "package_clause":
			if id := firstNamedOfKind(child, "package_identifier"); id != nil {
				tu.PkgName = f.text(id)
			}
		case "import_declaration":
			collectImports(child, f, tu.Imports)
		}
	}
	return tu, nil
}

type tsFile struct {
	src  []byte
	path string
}

func (f *tsFile) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(f.src)
}

func firstNamedOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if c := n.NamedChild(i); c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

func collectImports(n *sitter.Node, f *tsFile, into map[string]string) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		switch c.Kind() {
		case "import_spec_list":
			collectImports(c, f, into)
		case "import_spec":
			p, err := strconv.Unquote(f.text(c.ChildByFieldName("path")))
			if err != nil {
				continue
			}
			alias := f.text(c.ChildByFieldName("name"))
			if alias == "_" || alias == "." {
				continue
			}
			into[importName(alias, p)] = p
		}
	}
}

// precedingComments returns the comment lines directly above n.
func precedingComments(n *sitter.Node, f *tsFile) []string {
	var lines []string
	next := n
	for prev := n.PrevNamedSibling(); prev != nil && prev.Kind() == "comment"; prev = prev.PrevNamedSibling() {
		if prev.EndPosition().Row+1 < next.StartPosition().Row {
			break
		}
		lines = append([]string{f.text(prev)}, lines...)
		next = prev
	}
	return lines
}

type tsUnit struct {
	node *sitter.Node
	file *tsFile
}

func (u *tsUnit) Kind() Kind           { return KindTranslationUnit }
func (u *tsUnit) Spelling() string     { return u.file.path }
func (u *tsUnit) DisplayName() string  { return u.file.path }
func (u *tsUnit) SourceFile() string   { return u.file.path }
func (u *tsUnit) Annotation() string   { return "" }
func (u *tsUnit) TypeSpelling() string { return "" }
func (u *tsUnit) IsDefinition() bool   { return false }
func (u *tsUnit) Children() []Cursor {
	return []Cursor{&tsNamespace{node: u.node, file: u.file}}
}

type tsNamespace struct {
	node *sitter.Node
	file *tsFile
}

func (n *tsNamespace) Kind() Kind { return KindNamespace }
func (n *tsNamespace) Spelling() string {
	if pc := firstNamedOfKind(n.node, "package_clause"); pc != nil {
		return n.file.text(firstNamedOfKind(pc, "package_identifier"))
	}
	return ""
}
func (n *tsNamespace) DisplayName() string  { return n.Spelling() }
func (n *tsNamespace) SourceFile() string   { return n.file.path }
func (n *tsNamespace) Annotation() string   { return "" }
func (n *tsNamespace) TypeSpelling() string { return "" }
func (n *tsNamespace) IsDefinition() bool   { return false }

func (n *tsNamespace) Children() []Cursor {
	methods := make(map[string][]*sitter.Node)
	for i := uint(0); i < n.node.NamedChildCount(); i++ {
		c := n.node.NamedChild(i)
		if c.Kind() != "method_declaration" {
			continue
		}
		if recv := tsReceiverName(c, n.file); recv != "" {
			methods[recv] = append(methods[recv], c)
		}
	}

	var out []Cursor
	for i := uint(0); i < n.node.NamedChildCount(); i++ {
		decl := n.node.NamedChild(i)
		if decl.Kind() != "type_declaration" {
			continue
		}
		specs := 0
		for j := uint(0); j < decl.NamedChildCount(); j++ {
			if k := decl.NamedChild(j).Kind(); k == "type_spec" || k == "type_alias" {
				specs++
			}
		}
		for j := uint(0); j < decl.NamedChildCount(); j++ {
			spec := decl.NamedChild(j)
			kind := spec.Kind()
			if kind != "type_spec" && kind != "type_alias" {
				continue
			}
			typ := spec.ChildByFieldName("type")
			if kind == "type_spec" && (typ == nil || typ.Kind() != "struct_type") {
				continue
			}
			doc := precedingComments(spec, n.file)
			if len(doc) == 0 && specs == 1 {
				doc = precedingComments(decl, n.file)
			}
			name := n.file.text(spec.ChildByFieldName("name"))
			out = append(out, &tsClass{
				node:    spec,
				file:    n.file,
				doc:     doc,
				methods: methods[name],
			})
		}
	}
	return out
}

func tsReceiverName(method *sitter.Node, f *tsFile) string {
	recv := method.ChildByFieldName("receiver")
	if recv == nil {
		return ""
	}
	param := firstNamedOfKind(recv, "parameter_declaration")
	if param == nil {
		return ""
	}
	t := strings.TrimPrefix(f.text(param.ChildByFieldName("type")), "*")
	if i := strings.Index(t, "["); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

type tsClass struct {
	node    *sitter.Node
	file    *tsFile
	doc     []string
	methods []*sitter.Node
}

func (c *tsClass) Kind() Kind           { return KindClass }
func (c *tsClass) Spelling() string     { return c.file.text(c.node.ChildByFieldName("name")) }
func (c *tsClass) DisplayName() string  { return c.Spelling() }
func (c *tsClass) SourceFile() string   { return c.file.path }
func (c *tsClass) Annotation() string   { return directiveText(c.doc) }
func (c *tsClass) TypeSpelling() string { return "" }

func (c *tsClass) IsDefinition() bool {
	if c.node.Kind() != "type_spec" || c.node.ChildByFieldName("type_parameters") != nil {
		return false
	}
	typ := c.node.ChildByFieldName("type")
	return typ != nil && typ.Kind() == "struct_type"
}

func (c *tsClass) Children() []Cursor {
	typ := c.node.ChildByFieldName("type")
	if typ == nil || typ.Kind() != "struct_type" {
		return nil
	}
	list := firstNamedOfKind(typ, "field_declaration_list")
	if list == nil {
		return nil
	}

	var out []Cursor
	for i := uint(0); i < list.NamedChildCount(); i++ {
		decl := list.NamedChild(i)
		if decl.Kind() != "field_declaration" {
			continue
		}
		typNode := decl.ChildByFieldName("type")
		typText := c.file.text(typNode)
		tag := c.file.text(decl.ChildByFieldName("tag"))

		tc := decl.Walk()
		names := decl.ChildrenByFieldName("name", tc)
		tc.Close()

		if len(names) == 0 {
			if strings.HasPrefix(strings.TrimSpace(c.file.text(decl)), "*") {
				continue
			}
			base := typText
			if i := strings.LastIndex(base, "."); i >= 0 {
				base = base[i+1:]
			}
			out = append(out, &astField{
				kind: KindBaseSpecifier,
				name: base,
				typ:  typText,
				tag:  tag,
				path: c.file.path,
			})
			continue
		}
		for k := range names {
			name := c.file.text(&names[k])
			if name == "_" {
				continue
			}
			out = append(out, &astField{
				kind: KindField,
				name: name,
				typ:  typText,
				tag:  tag,
				path: c.file.path,
			})
		}
	}
	for _, m := range c.methods {
		out = append(out, newTSMethod(m, c.file))
	}
	return out
}

type tsMethod struct {
	node     *sitter.Node
	file     *tsFile
	params   []Cursor
	results  []Cursor
	children []Cursor
}

func newTSMethod(n *sitter.Node, f *tsFile) *tsMethod {
	m := &tsMethod{node: n, file: f}
	m.params = tsParams(n.ChildByFieldName("parameters"), KindParam, f)
	if res := n.ChildByFieldName("result"); res != nil {
		if res.Kind() == "parameter_list" {
			m.results = tsParams(res, KindResult, f)
		} else {
			m.results = []Cursor{&leaf{kind: KindResult, typ: f.text(res), file: f.path}}
		}
	}
	m.children = append(append([]Cursor{}, m.params...), m.results...)
	return m
}

func tsParams(list *sitter.Node, kind Kind, f *tsFile) []Cursor {
	if list == nil {
		return nil
	}
	var out []Cursor
	for i := uint(0); i < list.NamedChildCount(); i++ {
		p := list.NamedChild(i)
		switch p.Kind() {
		case "parameter_declaration", "variadic_parameter_declaration":
		default:
			continue
		}
		typ := f.text(p.ChildByFieldName("type"))
		if p.Kind() == "variadic_parameter_declaration" {
			typ = "..." + typ
		}
		tc := p.Walk()
		names := p.ChildrenByFieldName("name", tc)
		tc.Close()
		if len(names) == 0 {
			out = append(out, &leaf{kind: kind, typ: typ, file: f.path})
			continue
		}
		for k := range names {
			out = append(out, &leaf{kind: kind, spelling: f.text(&names[k]), typ: typ, file: f.path})
		}
	}
	return out
}

func (m *tsMethod) Kind() Kind       { return KindMethod }
func (m *tsMethod) Spelling() string { return m.file.text(m.node.ChildByFieldName("name")) }
func (m *tsMethod) DisplayName() string {
	return methodDisplayName(m.Spelling(), m.params, m.results)
}
func (m *tsMethod) SourceFile() string { return m.file.path }
func (m *tsMethod) Annotation() string {
	return directiveText(precedingComments(m.node, m.file))
}
func (m *tsMethod) TypeSpelling() string {
	return strings.TrimPrefix(m.DisplayName(), m.Spelling())
}
func (m *tsMethod) IsDefinition() bool { return false }
func (m *tsMethod) Children() []Cursor { return m.children }
