package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cmmoran/reflgen/internal/meta"
)

type Field struct {
	Name         string   // Go identifier
	TypeName     string   // declared type spelling
	Type         *TypeRef // parsed form of TypeName
	DisplayName  string   // serialized/looked-up name
	DefaultValue string
	Parent       *Class // non-owning
	Meta         meta.Metadata
}

// IsAccessible reports whether the field is emitted. Regular classes reflect
// every field not marked disable; whitelist classes only reflect fields
// marked enable.
func (f *Field) IsAccessible() bool {
	if f.Parent == nil {
		return false
	}
	pm := f.Parent.Meta
	return ((pm.GetFlag(meta.FlagFields) || pm.GetFlag(meta.FlagAll)) && !f.Meta.GetFlag(meta.FlagDisable)) ||
		(pm.GetFlag(meta.FlagWhitelist) && f.Meta.GetFlag(meta.FlagEnable))
}

func (f *Field) ShouldCompile() bool {
	return f.IsAccessible()
}

type Method struct {
	Name    string
	Params  []string
	Results []string
	Parent  *Class
	Meta    meta.Metadata
}

// ShouldCompile follows the field rule, restricted to methods callable
// without arguments.
func (m *Method) ShouldCompile() bool {
	if m.Parent == nil || len(m.Params) > 0 {
		return false
	}
	pm := m.Parent.Meta
	return ((pm.GetFlag(meta.FlagMethods) || pm.GetFlag(meta.FlagAll)) && !m.Meta.GetFlag(meta.FlagDisable)) ||
		(pm.GetFlag(meta.FlagWhitelist) && m.Meta.GetFlag(meta.FlagEnable))
}

// BaseClass is an embedded struct, resolved by name at registration time.
type BaseClass struct {
	Name string
	Type *TypeRef
}

type Class struct {
	Name          string
	QualifiedName string // import path + "." + Name
	DisplayName   string
	PkgName       string
	PkgPath       string
	File          string
	Namespace     []string
	Bases         []*BaseClass
	Fields        []*Field
	Methods       []*Method
	Meta          meta.Metadata
}

func (c *Class) ShouldCompileFields() bool {
	return c.Meta.GetFlag(meta.FlagAll) || c.Meta.GetFlag(meta.FlagFields) || c.Meta.GetFlag(meta.FlagWhitelist)
}

func (c *Class) ShouldCompileMethods() bool {
	return c.Meta.GetFlag(meta.FlagAll) || c.Meta.GetFlag(meta.FlagMethods)
}

func (c *Class) ShouldCompile() bool {
	return c.ShouldCompileFields()
}

func (c *Class) IsWhitelist() bool {
	return c.Meta.GetFlag(meta.FlagWhitelist)
}

// Field returns the compiled field with the given Go name.
func (c *Class) Field(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// SchemaModule holds the classes declared in one source file.
type SchemaModule struct {
	File    string
	PkgName string
	PkgPath string
	Imports map[string]string
	Classes []*Class
}

// FieldDisplayName strips the conventional m_ member prefix and lower-cases
// the leading initialism: Position -> position, ID -> id, HTTPPort -> httpPort.
func FieldDisplayName(name string) string {
	name = strings.TrimPrefix(strings.TrimPrefix(name, "m_"), "M_")
	if name == "" {
		return name
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return name
	}
	i := 0
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}
	switch {
	case i == 1 || i == len(runes):
		// single leading capital, or all caps
	case i > 1:
		// HTTPPort: keep the P of Port upper-case
		i--
	}
	for j := 0; j < i; j++ {
		runes[j] = unicode.ToLower(runes[j])
	}
	return string(runes)
}

// IsExported mirrors go/ast.IsExported for a plain name.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
