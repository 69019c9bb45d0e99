package model

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
)

// ReflectionPkg is the import path of the runtime package whose Ptr type marks
// polymorphic fields.
const ReflectionPkg = "github.com/cmmoran/reflgen/pkg/reflection"

type Kind int

const (
	KindInvalid     Kind = iota
	KindBuiltin          // string, int, bool, etc.
	KindNamed            // a declared type, local or imported
	KindPointer          // *T
	KindSlice            // []T
	KindPolymorphic      // reflection.Ptr[T]
	KindUnsupported      // map, func, chan, array, interface, generic instance
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindNamed:
		return "named"
	case KindPointer:
		return "pointer"
	case KindSlice:
		return "slice"
	case KindPolymorphic:
		return "polymorphic"
	case KindUnsupported:
		return "unsupported"
	}
	return "invalid"
}

type TypeRef struct {
	Kind     Kind
	Name     string // leaf identifier: "int", "Vector3"
	PkgPath  string // "" for builtins and same-package types
	PkgAlias string // selector used in source, e.g. "geo" in geo.Vector3
	Elem     *TypeRef
	Spelling string
}

var builtinIdents = map[string]bool{
	"string": true, "bool": true, "byte": true, "rune": true, "int": true, "int8": true, "int16": true,
	"int32": true, "int64": true, "uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true,
}

// ParseTypeRef parses a type spelling. imports maps local package names to
// import paths and resolves selector expressions.
func ParseTypeRef(spelling string, imports map[string]string) (*TypeRef, error) {
	expr, err := parser.ParseExpr(spelling)
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", spelling, err)
	}
	return typeRefFromExpr(expr, imports), nil
}

func typeRefFromExpr(expr ast.Expr, imports map[string]string) *TypeRef {
	ref := &TypeRef{Spelling: types.ExprString(expr)}
	switch t := expr.(type) {
	case *ast.ParenExpr:
		return typeRefFromExpr(t.X, imports)
	case *ast.Ident:
		ref.Name = t.Name
		if builtinIdents[t.Name] {
			ref.Kind = KindBuiltin
		} else if t.Name == "any" || t.Name == "error" || t.Name == "complex64" ||
			t.Name == "complex128" || t.Name == "uintptr" {
			ref.Kind = KindUnsupported
		} else {
			ref.Kind = KindNamed
		}
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			ref.Kind = KindUnsupported
			break
		}
		ref.Kind = KindNamed
		ref.Name = t.Sel.Name
		ref.PkgAlias = pkg.Name
		ref.PkgPath = imports[pkg.Name]
	case *ast.StarExpr:
		ref.Kind = KindPointer
		ref.Elem = typeRefFromExpr(t.X, imports)
	case *ast.ArrayType:
		if t.Len != nil {
			ref.Kind = KindUnsupported
			break
		}
		ref.Kind = KindSlice
		ref.Elem = typeRefFromExpr(t.Elt, imports)
	case *ast.IndexExpr:
		if isReflectionPtr(t.X, imports) {
			ref.Kind = KindPolymorphic
			ref.Name = "Ptr"
			ref.PkgPath = ReflectionPkg
			ref.Elem = typeRefFromExpr(t.Index, imports)
			break
		}
		ref.Kind = KindUnsupported
	default:
		ref.Kind = KindUnsupported
	}
	return ref
}

func isReflectionPtr(x ast.Expr, imports map[string]string) bool {
	sel, ok := x.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Ptr" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && imports[pkg.Name] == ReflectionPkg
}

// TypeName is the registry spelling: package qualifiers are dropped because
// classes are registered under their bare names.
func (t *TypeRef) TypeName() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindBuiltin, KindNamed:
		return t.Name
	case KindPointer:
		return "*" + t.Elem.TypeName()
	case KindSlice:
		return "[]" + t.Elem.TypeName()
	case KindPolymorphic:
		return "reflection.Ptr[" + t.Elem.TypeName() + "]"
	}
	return t.Spelling
}

// Leaf returns the innermost element type.
func (t *TypeRef) Leaf() *TypeRef {
	for t != nil && t.Elem != nil {
		t = t.Elem
	}
	return t
}

func (t *TypeRef) IsSlice() bool {
	return t != nil && t.Kind == KindSlice
}

// Serializable reports whether the serializer can encode every level of t.
func (t *TypeRef) Serializable() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindBuiltin, KindNamed:
		return true
	case KindPointer, KindSlice, KindPolymorphic:
		return t.Elem.Serializable()
	}
	return false
}

// Walk calls fn for t and every nested element.
func (t *TypeRef) Walk(fn func(*TypeRef)) {
	for ; t != nil; t = t.Elem {
		fn(t)
	}
}
