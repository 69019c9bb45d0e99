package generator

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/reflgen/internal/model"
)

// ErrKeyCollision is returned when two serialized members of a class, its
// flattened bases included, share a JSON key.
var ErrKeyCollision = errors.New("generator: serialized key collision")

// Serializer emits WriteReflect and ReadReflect for every class.
type Serializer struct {
	*settings

	classes []*model.Class
}

func NewSerializer(symbols *model.SymbolTable, opts ...Option) *Serializer {
	return &Serializer{settings: newSettings(symbols, DefaultSerializerSuffix, opts)}
}

func (g *Serializer) Name() string {
	return "serializer"
}

func (g *Serializer) Generate(mod *model.SchemaModule) (*Output, error) {
	if mod == nil || len(mod.Classes) == 0 {
		return nil, nil
	}
	f := newFile(mod)

	for _, c := range mod.Classes {
		if err := g.checkKeys(c); err != nil {
			return nil, err
		}
	}
	for i, c := range mod.Classes {
		if i > 0 {
			f.Line()
		}
		g.class(f, c)
		g.classes = append(g.classes, c)
	}
	return &Output{Path: g.outputPath(mod.File), File: f}, nil
}

type serializedKey struct {
	key   string
	owner string
}

// keys lists the JSON keys WriteReflect of c produces, base keys first since
// bases are merged flat into the same object.
func (g *Serializer) keys(c *model.Class, depth int) []serializedKey {
	var out []serializedKey
	if depth > 32 {
		return out
	}
	for _, b := range c.Bases {
		if bc, reason := g.checkBase(c, b); reason == "" && bc != nil {
			out = append(out, g.keys(bc, depth+1)...)
		}
	}
	for _, f := range c.Fields {
		if reason, _ := g.checkField(c, f); reason == "" {
			out = append(out, serializedKey{key: f.DisplayName, owner: c.Name + "." + f.Name})
		}
	}
	return out
}

// checkKeys fails when a later member would overwrite an earlier one on write
// and the base would then read the shadowing value back.
func (g *Serializer) checkKeys(c *model.Class) error {
	seen := make(map[string]string)
	for _, k := range g.keys(c, 0) {
		if prev, ok := seen[k.key]; ok {
			return fmt.Errorf("%s: key %q of %s collides with %s: %w", c.Name, k.key, k.owner, prev, ErrKeyCollision)
		}
		seen[k.key] = k.owner
	}
	return nil
}

func (g *Serializer) class(f *jen.File, c *model.Class) {
	var (
		writes = []jen.Code{jen.Id("obj").Op(":=").Qual(serializerPkg, "NewObject").Call()}
		reads  = []jen.Code{jen.Id("r").Op(":=").Qual(serializerPkg, "NewReader").Call(jen.Id("doc"))}
	)

	for _, b := range c.Bases {
		if !g.base(c, b) {
			continue
		}
		writes = append(writes, jen.Id("obj").Dot("Merge").Call(jen.Id("o").Dot(b.Name).Dot("WriteReflect").Call()))
		reads = append(reads, jen.Id("r").Dot("Base").Call(jen.Id("o").Dot(b.Name).Dot("ReadReflect")))
	}

	for _, fld := range c.Fields {
		if !g.serializable(c, fld) {
			continue
		}
		key := jen.Lit(fld.DisplayName)
		ref := jen.Op("&").Id("o").Dot(fld.Name)
		writes = append(writes, jen.Qual(serializerPkg, "Field").Call(jen.Id("obj"), key, ref, codec(fld.Type, "Write")))
		reads = append(reads, jen.Qual(serializerPkg, "ReadField").Call(jen.Id("r"), key, ref, codec(fld.Type, "Read")))
	}

	writes = append(writes, jen.Return(jen.Id("obj").Dot("Bytes").Call()))
	reads = append(reads, jen.Return(jen.Id("r").Dot("Err").Call()))

	recv := jen.Id("o").Op("*").Id(c.Name)
	f.Func().Params(recv).Id("WriteReflect").Params().Params(jen.Qual(jsonPkg, "RawMessage"), jen.Error()).Block(writes...)
	f.Line()
	f.Func().Params(recv.Clone()).Id("ReadReflect").Params(jen.Id("doc").Qual(gjsonPkg, "Result")).Error().Block(reads...)
}

// base reports whether b can be merged: it must be a value embedding of a
// generated class.
func (g *Serializer) base(c *model.Class, b *model.BaseClass) bool {
	if _, reason := g.checkBase(c, b); reason != "" {
		g.logger.Warn(reason,
			"class", c.Name,
			"base", b.Name,
			"file", c.File,
		)
		return false
	}
	return true
}

func (g *Serializer) checkBase(c *model.Class, b *model.BaseClass) (*model.Class, string) {
	if b.Type == nil || b.Type.Kind != model.KindNamed {
		return nil, "skipping base: only value embedding is serialized"
	}
	s, ok := g.symbols.Resolve(b.Type, c.PkgPath)
	if !ok {
		return nil, "skipping base: not a generated class"
	}
	return s.Class, ""
}

// serializable checks every level of the field type. Named types declared in
// the class's own package must be generated classes; imported types are
// trusted to be json.Marshaler or generated elsewhere.
func (g *Serializer) serializable(c *model.Class, f *model.Field) bool {
	if reason, typ := g.checkField(c, f); reason != "" {
		g.logger.Warn(reason,
			"class", c.Name,
			"field", f.Name,
			"type", typ,
			"file", c.File,
		)
		return false
	}
	return true
}

// checkField returns the reason f is skipped and the offending type, or "".
func (g *Serializer) checkField(c *model.Class, f *model.Field) (string, string) {
	if f.Type == nil || !f.Type.Serializable() || !spellable(f.Type) {
		return "skipping field: unsupported type", f.TypeName
	}
	for t := f.Type; t != nil; t = t.Elem {
		if t.Kind == model.KindPolymorphic {
			break
		}
		if t.Kind != model.KindNamed || t.PkgPath != "" {
			continue
		}
		if _, ok := g.symbols.Resolve(t, c.PkgPath); !ok {
			return "skipping field: unresolved type", t.Name
		}
	}
	return "", ""
}

// codec composes the serializer combinators for t; dir is Write or Read.
func codec(t *model.TypeRef, dir string) jen.Code {
	switch t.Kind {
	case model.KindPointer:
		return jen.Qual(serializerPkg, dir+"Pointer").Call(codec(t.Elem, dir))
	case model.KindSlice:
		return jen.Qual(serializerPkg, dir+"Slice").Call(codec(t.Elem, dir))
	case model.KindPolymorphic:
		return jen.Qual(serializerPkg, dir+"Polymorphic").Types(typeCode(t.Elem))
	}
	return jen.Qual(serializerPkg, dir).Types(typeCode(t))
}

// Finish emits compile-time Serializable assertions for every class and the
// Names table.
func (g *Serializer) Finish() ([]*Output, error) {
	if g.indexDir == "" || len(g.classes) == 0 {
		return nil, nil
	}
	out := g.indexFile(SerializerIndexFile)
	f := out.File

	asserts := make([]jen.Code, 0, len(g.classes))
	names := make([]string, 0, len(g.classes))
	for _, c := range g.classes {
		asserts = append(asserts, jen.Id("_").Qual(serializerPkg, "Serializable").Op("=").
			Parens(jen.Op("*").Qual(c.PkgPath, c.Name)).Call(jen.Nil()))
		names = append(names, c.Name)
	}
	f.Var().Defs(asserts...)
	f.Line()
	f.Comment("Names lists every class with generated serializer methods.")
	f.Var().Id("Names").Op("=").Index().String().Values(litStrings(unique(names))...)
	return []*Output{out}, nil
}
