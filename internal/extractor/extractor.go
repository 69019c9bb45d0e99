package extractor

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/cmmoran/reflgen/internal/cursor"
	"github.com/cmmoran/reflgen/internal/meta"
	"github.com/cmmoran/reflgen/internal/model"
)

// Extractor turns cursor trees into schema modules. It is single use: call
// Run once, or ParseUnit for each unit and then Symbols.
type Extractor struct {
	modules map[string]*model.SchemaModule
	symbols *model.SymbolTable

	// namespaces is the stack of enclosing namespace names while visiting
	namespaces []string
	logger     *slog.Logger
}

type Option func(*Extractor)

func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

func New(opts ...Option) *Extractor {
	e := &Extractor{
		modules: make(map[string]*model.SchemaModule),
		symbols: model.NewSymbolTable(),
		logger:  slog.Default(),
	}
	for _, fn := range opts {
		fn(e)
	}
	return e
}

// Run is pass one: every unit is extracted and the symbol table completed
// before anything is returned. Modules come back sorted by file path.
func (e *Extractor) Run(units []*cursor.TranslationUnit) ([]*model.SchemaModule, *model.SymbolTable) {
	for _, tu := range units {
		e.ParseUnit(tu)
	}
	return e.Modules(), e.symbols
}

// Modules returns every module with at least one class, sorted by file.
func (e *Extractor) Modules() []*model.SchemaModule {
	out := make([]*model.SchemaModule, 0, len(e.modules))
	for _, m := range e.modules {
		if len(m.Classes) > 0 {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out
}

func (e *Extractor) Symbols() *model.SymbolTable {
	return e.symbols
}

// ParseUnit extracts the classes of one translation unit into its module.
func (e *Extractor) ParseUnit(tu *cursor.TranslationUnit) *model.SchemaModule {
	mod, ok := e.modules[tu.File]
	if !ok {
		mod = &model.SchemaModule{
			File:    tu.File,
			PkgName: tu.PkgName,
			PkgPath: tu.PkgPath,
			Imports: tu.Imports,
		}
		e.modules[tu.File] = mod
	}

	e.namespaces = e.namespaces[:0]
	e.visitChildren(tu.Root, tu, mod)
	return mod
}

func (e *Extractor) visitChildren(c cursor.Cursor, tu *cursor.TranslationUnit, mod *model.SchemaModule) {
	for _, child := range c.Children() {
		switch child.Kind() {
		case cursor.KindNamespace:
			e.namespaces = append(e.namespaces, child.Spelling())
			e.visitChildren(child, tu, mod)
			e.namespaces = e.namespaces[:len(e.namespaces)-1]
		case cursor.KindClass:
			if !child.IsDefinition() {
				continue
			}
			class := e.buildClass(child, tu)
			if !class.ShouldCompile() {
				continue
			}
			mod.Classes = append(mod.Classes, class)
			if prev := e.symbols.Add(class); prev != nil && prev.PkgPath != class.PkgPath {
				e.logger.Warn("class name declared in more than one package",
					"class", class.Name,
					"previous", prev.QualifiedName,
					"current", class.QualifiedName,
					"file", tu.File,
				)
			}
			e.logger.Debug("class extracted",
				"class", class.QualifiedName,
				"file", tu.File,
				"fields", len(class.Fields),
				"methods", len(class.Methods),
			)
		}
	}
}

func (e *Extractor) buildClass(c cursor.Cursor, tu *cursor.TranslationUnit) *model.Class {
	class := &model.Class{
		Name:          c.Spelling(),
		QualifiedName: tu.PkgPath + "." + c.Spelling(),
		DisplayName:   c.DisplayName(),
		PkgName:       tu.PkgName,
		PkgPath:       tu.PkgPath,
		File:          tu.File,
		Namespace:     append([]string(nil), e.namespaces...),
		Meta:          meta.Parse(c.Annotation()),
	}

	for _, child := range c.Children() {
		switch child.Kind() {
		case cursor.KindBaseSpecifier:
			ref, err := model.ParseTypeRef(child.TypeSpelling(), tu.Imports)
			if err != nil {
				e.logger.Warn("skipping base", "class", class.Name, "file", tu.File, "error", err)
				continue
			}
			class.Bases = append(class.Bases, &model.BaseClass{Name: child.Spelling(), Type: ref})
		case cursor.KindField:
			f := e.buildField(child, class, tu)
			if f == nil || !f.ShouldCompile() {
				continue
			}
			class.Fields = append(class.Fields, f)
		case cursor.KindMethod:
			m := buildMethod(child, class)
			if !m.ShouldCompile() {
				continue
			}
			class.Methods = append(class.Methods, m)
		}
	}

	return class
}

func (e *Extractor) buildField(c cursor.Cursor, parent *model.Class, tu *cursor.TranslationUnit) *model.Field {
	md := meta.Parse(c.Annotation())
	f := &model.Field{
		Name:         c.Spelling(),
		TypeName:     c.TypeSpelling(),
		DisplayName:  model.FieldDisplayName(c.Spelling()),
		DefaultValue: md.GetProperty(meta.PropDefault),
		Parent:       parent,
		Meta:         md,
	}
	if name := md.GetProperty(meta.PropName); name != "" {
		f.DisplayName = name
	}

	ref, err := model.ParseTypeRef(f.TypeName, tu.Imports)
	if err != nil {
		e.logger.Warn("skipping field",
			"class", parent.Name,
			"field", f.Name,
			"file", tu.File,
			"error", err,
		)
		return nil
	}
	f.Type = ref
	if f.ShouldCompile() && !ref.Serializable() {
		e.logger.Warn("field type is not serializable",
			"class", parent.Name,
			"field", f.Name,
			"type", f.TypeName,
		)
	}
	return f
}

func buildMethod(c cursor.Cursor, parent *model.Class) *model.Method {
	m := &model.Method{
		Name:   c.Spelling(),
		Parent: parent,
		Meta:   meta.Parse(c.Annotation()),
	}
	for _, child := range c.Children() {
		switch child.Kind() {
		case cursor.KindParam:
			m.Params = append(m.Params, child.TypeSpelling())
		case cursor.KindResult:
			m.Results = append(m.Results, child.TypeSpelling())
		}
	}
	return m
}

// Summary renders "pkg.Class(fields...)" lines for debugging output.
func Summary(mods []*model.SchemaModule) string {
	var b strings.Builder
	for _, m := range mods {
		for _, c := range m.Classes {
			b.WriteString(m.PkgName + "." + c.Name + "(")
			for i, f := range c.Fields {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(f.DisplayName + " " + f.Type.TypeName())
			}
			b.WriteString(")\n")
		}
	}
	return b.String()
}
