package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"github.com/cmmoran/reflgen/internal/model"
)

// Reflection emits ReflectTypeName methods and registry init functions.
type Reflection struct {
	*settings

	classes  []string
	packages []string
}

func NewReflection(symbols *model.SymbolTable, opts ...Option) *Reflection {
	return &Reflection{settings: newSettings(symbols, DefaultReflectionSuffix, opts)}
}

func (g *Reflection) Name() string {
	return "reflection"
}

func (g *Reflection) Generate(mod *model.SchemaModule) (*Output, error) {
	if mod == nil || len(mod.Classes) == 0 {
		return nil, nil
	}
	f := newFile(mod)

	for _, c := range mod.Classes {
		f.Func().Params(jen.Op("*").Id(c.Name)).Id("ReflectTypeName").Params().String().Block(
			jen.Return(jen.Lit(c.Name)),
		)
		f.Line()
	}

	var (
		body   []jen.Code
		arrays []jen.Code
		seen   = make(map[string]bool)
	)
	for _, c := range mod.Classes {
		body = append(body, g.class(c))
		for _, fld := range c.Fields {
			body = append(body, g.field(c, fld))
			if fld.Type == nil || !spellable(fld.Type) {
				continue
			}
			fld.Type.Walk(func(t *model.TypeRef) {
				if !t.IsSlice() || seen[t.TypeName()] {
					return
				}
				seen[t.TypeName()] = true
				arrays = append(arrays, jen.Id("_").Op("=").Qual(reflectionPkg, "RegisterArray").Call(
					jen.Qual(reflectionPkg, "SliceOf").Types(typeCode(t.Elem)).Call(
						jen.Lit(t.TypeName()),
						jen.Lit(t.Elem.TypeName()),
					),
				))
			})
		}
		for _, m := range c.Methods {
			body = append(body, method(c, m))
		}
		g.classes = append(g.classes, c.Name)
	}
	f.Func().Id("init").Params().Block(append(body, arrays...)...)

	g.packages = append(g.packages, mod.PkgPath)
	g.logger.Debug("reflection generated", "file", mod.File, "classes", len(mod.Classes), "arrays", len(arrays))
	return &Output{Path: g.outputPath(mod.File), File: f}, nil
}

func (g *Reflection) class(c *model.Class) jen.Code {
	var bases []jen.Code
	for _, b := range c.Bases {
		sym, ok := g.symbols.Resolve(b.Type.Leaf(), c.PkgPath)
		if !ok {
			g.logger.Warn("unresolved base class", "class", c.Name, "base", b.Name, "file", c.File)
			continue
		}
		value := jen.Op("&").Id("o").Dot(b.Name)
		if b.Type.Kind == model.KindPointer {
			value = jen.Id("o").Dot(b.Name)
		}
		bases = append(bases, jen.Values(jen.Dict{
			jen.Id("Name"):  jen.Lit(sym.Name),
			jen.Id("Value"): value,
		}))
	}

	walker := jen.Nil()
	if len(bases) > 0 {
		walker = jen.Func().Params(jen.Id("o").Op("*").Id(c.Name)).Index().Qual(reflectionPkg, "Base").Block(
			jen.Return(jen.Index().Qual(reflectionPkg, "Base").Values(bases...)),
		)
	}
	return jen.Id("_").Op("=").Qual(reflectionPkg, "RegisterClass").Call(
		jen.Qual(reflectionPkg, "ClassOf").Types(jen.Id(c.Name)).Call(jen.Lit(c.Name), walker),
	)
}

// instance asserts the generic inst argument to the owning class.
func instance(c *model.Class) jen.Code {
	return jen.List(jen.Id("o"), jen.Id("ok")).Op(":=").Id("inst").Assert(jen.Op("*").Id(c.Name))
}

func (g *Reflection) field(c *model.Class, f *model.Field) jen.Code {
	d := jen.Dict{
		jen.Id("Owner"):       jen.Lit(c.Name),
		jen.Id("Name"):        jen.Lit(f.Name),
		jen.Id("DisplayName"): jen.Lit(f.DisplayName),
		jen.Id("TypeName"):    jen.Lit(f.Type.TypeName()),
		jen.Id("Get"): jen.Func().Params(jen.Id("inst").Id("any")).Id("any").Block(
			jen.If(instance(c), jen.Id("ok")).Block(
				jen.Return(jen.Op("&").Id("o").Dot(f.Name)),
			),
			jen.Return(jen.Nil()),
		),
		jen.Id("Set"): jen.Func().Params(jen.Id("inst").Id("any"), jen.Id("v").Id("any")).Bool().Block(
			instance(c),
			jen.Return(jen.Id("ok").Op("&&").Qual(reflectionPkg, "Assign").Call(
				jen.Op("&").Id("o").Dot(f.Name),
				jen.Id("v"),
			)),
		),
	}
	if f.Type.IsSlice() {
		d[jen.Id("IsArray")] = jen.Lit(true)
		d[jen.Id("ElementName")] = jen.Lit(inflection.Singular(f.DisplayName))
	}
	if f.DefaultValue != "" {
		d[jen.Id("DefaultValue")] = jen.Lit(f.DefaultValue)
	}
	return jen.Id("_").Op("=").Qual(reflectionPkg, "RegisterField").Call(
		jen.Qual(reflectionPkg, "FieldFuncs").Values(d),
	)
}

func method(c *model.Class, m *model.Method) jen.Code {
	call := jen.Id("o").Dot(m.Name).Call()
	var invoke []jen.Code
	switch len(m.Results) {
	case 0:
		invoke = []jen.Code{call, jen.Return(jen.Index().Id("any").Values())}
	case 1:
		invoke = []jen.Code{jen.Return(jen.Index().Id("any").Values(call))}
	default:
		results := make([]jen.Code, len(m.Results))
		for i := range m.Results {
			results[i] = jen.Id(fmt.Sprintf("r%d", i))
		}
		invoke = []jen.Code{
			jen.List(results...).Op(":=").Add(call),
			jen.Return(jen.Index().Id("any").Values(results...)),
		}
	}
	return jen.Id("_").Op("=").Qual(reflectionPkg, "RegisterMethod").Call(
		jen.Qual(reflectionPkg, "MethodFuncs").Values(jen.Dict{
			jen.Id("Owner"): jen.Lit(c.Name),
			jen.Id("Name"):  jen.Lit(m.Name),
			jen.Id("Invoke"): jen.Func().Params(jen.Id("inst").Id("any")).Index().Id("any").Block(
				jen.If(instance(c), jen.Id("ok")).Block(invoke...),
				jen.Return(jen.Nil()),
			),
		}),
	)
}

// Finish emits the index: a blank import of every generated package, the
// Classes list and Load.
func (g *Reflection) Finish() ([]*Output, error) {
	if g.indexDir == "" {
		return nil, nil
	}
	out := g.indexFile(ReflectionIndexFile)
	f := out.File
	for _, p := range unique(g.packages) {
		if p != g.indexPkgPath {
			f.Anon(p)
		}
	}

	f.Comment("Classes lists every generated class in file and declaration order.")
	f.Var().Id("Classes").Op("=").Index().String().Values(litStrings(unique(g.classes))...)
	f.Line()
	f.Comment("Load verifies that every generated class registered itself and seals the default registry.")
	f.Func().Id("Load").Params().Error().Block(
		jen.If(
			jen.Err().Op(":=").Qual(reflectionPkg, "Verify").Call(jen.Id("Classes").Op("...")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Err())),
		jen.Qual(reflectionPkg, "Seal").Call(),
		jen.Return(jen.Nil()),
	)
	return []*Output{out}, nil
}

// Classes returns the class names generated so far.
func (g *Reflection) Classes() []string {
	return unique(g.classes)
}
