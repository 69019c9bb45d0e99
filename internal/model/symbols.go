package model

import "sort"

// Symbol records where a class was declared.
type Symbol struct {
	Name          string
	QualifiedName string
	File          string
	PkgName       string
	PkgPath       string
	Class         *Class
}

// SymbolTable maps type names to their declaring module. It is complete
// before any code is emitted.
//
// Two classes with the same name in different files are both kept by the
// extractor; here the last one added wins for bare-name lookups.
type SymbolTable struct {
	byName      map[string]*Symbol
	byQualified map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		byName:      make(map[string]*Symbol),
		byQualified: make(map[string]*Symbol),
	}
}

// Add records c. When another class with the same bare name but a different
// qualified name was already recorded, that symbol is returned as shadowed.
func (t *SymbolTable) Add(c *Class) (shadowed *Symbol) {
	if prev, ok := t.byName[c.Name]; ok && prev.QualifiedName != c.QualifiedName {
		shadowed = prev
	}
	s := &Symbol{
		Name:          c.Name,
		QualifiedName: c.QualifiedName,
		File:          c.File,
		PkgName:       c.PkgName,
		PkgPath:       c.PkgPath,
		Class:         c,
	}
	t.byName[c.Name] = s
	t.byQualified[c.QualifiedName] = s
	return shadowed
}

func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Resolve finds the symbol a named TypeRef refers to from code in fromPkg.
// Same-package references have no PkgPath of their own.
func (t *SymbolTable) Resolve(ref *TypeRef, fromPkg string) (*Symbol, bool) {
	if ref == nil || ref.Kind != KindNamed {
		return nil, false
	}
	pkg := ref.PkgPath
	if pkg == "" && ref.PkgAlias == "" {
		pkg = fromPkg
	}
	if pkg != "" {
		s, ok := t.byQualified[pkg+"."+ref.Name]
		return s, ok
	}
	// unresolved import alias: fall back to the bare name
	return t.Lookup(ref.Name)
}

func (t *SymbolTable) Len() int {
	return len(t.byName)
}

// Names returns every bare class name, sorted.
func (t *SymbolTable) Names() []string {
	out := make([]string, 0, len(t.byName))
	for n := range t.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
