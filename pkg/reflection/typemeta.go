package reflection

import (
	"strings"
)

// TypeMeta is a query handle over one registered class. It snapshots the
// field and method lists when built and does not see later registrations.
type TypeMeta struct {
	name    string
	reg     *Registry
	class   *ClassFuncs
	fields  []FieldAccessor
	methods []MethodAccessor
}

// Meta builds the TypeMeta of name. Unknown names produce an invalid, empty
// TypeMeta.
func (r *Registry) Meta(name string) TypeMeta {
	t := TypeMeta{name: name, reg: r}
	t.class, _ = r.Class(name)
	for _, f := range r.Fields(name) {
		t.fields = append(t.fields, FieldAccessor{f: f, reg: r})
	}
	for _, m := range r.Methods(name) {
		t.methods = append(t.methods, MethodAccessor{m: m})
	}
	return t
}

// NewMetaFromName builds a TypeMeta from the default registry.
func NewMetaFromName(name string) TypeMeta {
	return Default().Meta(name)
}

// IsValid is true when the class is registered or has reflected fields.
func (t TypeMeta) IsValid() bool {
	return t.class != nil || len(t.fields) > 0
}

func (t TypeMeta) TypeName() string {
	return t.name
}

func (t TypeMeta) GetFieldsList() []FieldAccessor {
	return append([]FieldAccessor(nil), t.fields...)
}

func (t TypeMeta) GetMethodsList() []MethodAccessor {
	return append([]MethodAccessor(nil), t.methods...)
}

// GetFieldByName matches either the display name or the Go identifier. A miss
// returns an invalid accessor whose Get and Set do nothing.
func (t TypeMeta) GetFieldByName(name string) FieldAccessor {
	for _, f := range t.fields {
		if f.f.DisplayName == name || f.f.Name == name {
			return f
		}
	}
	return FieldAccessor{}
}

func (t TypeMeta) GetMethodByName(name string) MethodAccessor {
	for _, m := range t.methods {
		if m.m.Name == name {
			return m
		}
	}
	return MethodAccessor{}
}

// GetBaseClassReflectionInstanceList returns one Instance per reflected base
// of inst, each pointing into inst.
func (t TypeMeta) GetBaseClassReflectionInstanceList(inst any) []Instance {
	if t.class == nil || t.class.Bases == nil || inst == nil {
		return nil
	}
	bases := t.class.Bases(inst)
	if len(bases) == 0 {
		return nil
	}
	out := make([]Instance, 0, len(bases))
	for _, b := range bases {
		out = append(out, Instance{Meta: t.reg.Meta(b.Name), Value: b.Value})
	}
	return out
}

// NewInstance allocates a zero value of the class.
func (t TypeMeta) NewInstance() Instance {
	if t.class == nil || t.class.New == nil {
		return Instance{}
	}
	return Instance{Meta: t, Value: t.class.New()}
}

// Instance pairs a value with the TypeMeta of its class.
type Instance struct {
	Meta  TypeMeta
	Value any
}

func (i Instance) IsValid() bool {
	return i.Value != nil && i.Meta.IsValid()
}

// FieldAccessor reads and writes one reflected field of an instance. The
// zero value is invalid.
type FieldAccessor struct {
	f   *FieldFuncs
	reg *Registry
}

func (a FieldAccessor) IsValid() bool {
	return a.f != nil
}

// Get returns a pointer to the field of inst, or nil.
func (a FieldAccessor) Get(inst any) any {
	if a.f == nil || a.f.Get == nil {
		return nil
	}
	return a.f.Get(inst)
}

// Set stores v, a value or pointer of the field type, into inst.
func (a FieldAccessor) Set(inst, v any) bool {
	if a.f == nil || a.f.Set == nil {
		return false
	}
	return a.f.Set(inst, v)
}

// FieldName is the display name used in documents.
func (a FieldAccessor) FieldName() string {
	if a.f == nil {
		return ""
	}
	return a.f.DisplayName
}

// Identifier is the Go field name.
func (a FieldAccessor) Identifier() string {
	if a.f == nil {
		return ""
	}
	return a.f.Name
}

func (a FieldAccessor) FieldTypeName() string {
	if a.f == nil {
		return ""
	}
	return a.f.TypeName
}

func (a FieldAccessor) OwnerTypeName() string {
	if a.f == nil {
		return ""
	}
	return a.f.Owner
}

func (a FieldAccessor) IsArrayType() bool {
	return a.f != nil && a.f.IsArray
}

// ElementName is the singular display name of an array element, "" for
// non-array fields.
func (a FieldAccessor) ElementName() string {
	if a.f == nil {
		return ""
	}
	return a.f.ElementName
}

func (a FieldAccessor) DefaultValue() string {
	if a.f == nil {
		return ""
	}
	return a.f.DefaultValue
}

func (a FieldAccessor) GetOwnerTypeMeta() TypeMeta {
	if a.f == nil {
		return TypeMeta{}
	}
	return a.reg.Meta(a.f.Owner)
}

// GetTypeMeta returns the TypeMeta of the class the field holds, looking
// through pointers, slices and Ptr handles.
func (a FieldAccessor) GetTypeMeta() TypeMeta {
	if a.f == nil {
		return TypeMeta{}
	}
	return a.reg.Meta(LeafTypeName(a.f.TypeName))
}

// ArrayAccessor returns the accessor of the field's slice type, invalid for
// non-array fields.
func (a FieldAccessor) ArrayAccessor() ArrayAccessor {
	if a.f == nil || !a.f.IsArray {
		return ArrayAccessor{}
	}
	return a.reg.ArrayAccessor(a.f.TypeName)
}

// LeafTypeName strips slice, pointer and Ptr wrappers from a registry type
// name: "[]*Vector3" and "reflection.Ptr[Component]" become "Vector3" and
// "Component".
func LeafTypeName(name string) string {
	for {
		switch {
		case strings.HasPrefix(name, "[]"):
			name = name[2:]
		case strings.HasPrefix(name, "*"):
			name = name[1:]
		case strings.HasPrefix(name, "reflection.Ptr[") && strings.HasSuffix(name, "]"):
			name = name[len("reflection.Ptr[") : len(name)-1]
		default:
			return name
		}
	}
}

// MethodAccessor invokes one reflected zero-argument method.
type MethodAccessor struct {
	m *MethodFuncs
}

func (a MethodAccessor) IsValid() bool {
	return a.m != nil
}

func (a MethodAccessor) MethodName() string {
	if a.m == nil {
		return ""
	}
	return a.m.Name
}

// Invoke calls the method on inst and returns its results, nil on a miss.
func (a MethodAccessor) Invoke(inst any) []any {
	if a.m == nil {
		return nil
	}
	return a.m.Invoke(inst)
}

// ArrayAccessor indexes into a registered slice type.
type ArrayAccessor struct {
	a *ArrayFuncs
}

func (r *Registry) ArrayAccessor(typeName string) ArrayAccessor {
	a, _ := r.Array(typeName)
	return ArrayAccessor{a: a}
}

// NewArrayAccessor looks typeName up in the default registry.
func NewArrayAccessor(typeName string) ArrayAccessor {
	return Default().ArrayAccessor(typeName)
}

func (a ArrayAccessor) IsValid() bool {
	return a.a != nil
}

func (a ArrayAccessor) ArrayTypeName() string {
	if a.a == nil {
		return ""
	}
	return a.a.TypeName
}

func (a ArrayAccessor) ElementTypeName() string {
	if a.a == nil {
		return ""
	}
	return a.a.ElementTypeName
}

// Get returns a pointer to element i of arr, nil when out of range.
func (a ArrayAccessor) Get(arr any, i int) any {
	if a.a == nil {
		return nil
	}
	return a.a.Get(arr, i)
}

func (a ArrayAccessor) Set(arr any, i int, v any) bool {
	if a.a == nil {
		return false
	}
	return a.a.Set(arr, i, v)
}

func (a ArrayAccessor) GetSize(arr any) int {
	if a.a == nil {
		return 0
	}
	return a.a.Size(arr)
}
