package reflection

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/multierr"
)

type vec struct {
	X, Y float64
}

func (v *vec) ReflectTypeName() string { return "vec" }

func (v *vec) WriteReflect() (json.RawMessage, error) {
	return json.Marshal(map[string]float64{"x": v.X, "y": v.Y})
}

func (v *vec) ReadReflect(doc gjson.Result) error {
	if !doc.IsObject() {
		return errors.New("vec: not an object")
	}
	v.X, v.Y = doc.Get("x").Float(), doc.Get("y").Float()
	return nil
}

type body struct {
	vec
	Mass   float64
	Points []vec

	destroyed *int
}

func (b *body) ReflectTypeName() string { return "body" }

func (b *body) WriteReflect() (json.RawMessage, error) {
	return json.Marshal(map[string]any{"x": b.X, "y": b.Y, "mass": b.Mass})
}

func (b *body) ReadReflect(doc gjson.Result) error {
	if err := b.vec.ReadReflect(doc); err != nil {
		return err
	}
	b.Mass = doc.Get("mass").Float()
	return nil
}

func (b *body) Destroy() {
	if b.destroyed != nil {
		*b.destroyed++
	}
}

func (b *body) Weight() float64 { return b.Mass * 9.8 }

func registerTestTypes(t *testing.T, r *Registry) {
	t.Helper()
	require.NoError(t, r.RegisterClass(ClassOf[vec]("vec", nil)))
	require.NoError(t, r.RegisterField(FieldFuncs{
		Owner: "vec", Name: "X", DisplayName: "x", TypeName: "float64",
		Get: func(inst any) any {
			if o, ok := inst.(*vec); ok {
				return &o.X
			}
			return nil
		},
		Set: func(inst, v any) bool { o, ok := inst.(*vec); return ok && Assign(&o.X, v) },
	}))
	require.NoError(t, r.RegisterClass(ClassOf[body]("body", func(o *body) []Base {
		return []Base{{Name: "vec", Value: &o.vec}}
	})))
	require.NoError(t, r.RegisterField(FieldFuncs{
		Owner: "body", Name: "Mass", DisplayName: "mass", TypeName: "float64", DefaultValue: "1",
		Get: func(inst any) any {
			if o, ok := inst.(*body); ok {
				return &o.Mass
			}
			return nil
		},
		Set: func(inst, v any) bool { o, ok := inst.(*body); return ok && Assign(&o.Mass, v) },
	}))
	require.NoError(t, r.RegisterField(FieldFuncs{
		Owner: "body", Name: "Points", DisplayName: "points", TypeName: "[]vec",
		IsArray: true, ElementName: "point",
		Get: func(inst any) any {
			if o, ok := inst.(*body); ok {
				return &o.Points
			}
			return nil
		},
		Set: func(inst, v any) bool { o, ok := inst.(*body); return ok && Assign(&o.Points, v) },
	}))
	require.NoError(t, r.RegisterArray(SliceOf[vec]("[]vec", "vec")))
	require.NoError(t, r.RegisterMethod(MethodFuncs{
		Owner: "body", Name: "Weight",
		Invoke: func(inst any) []any {
			if o, ok := inst.(*body); ok {
				return []any{o.Weight()}
			}
			return nil
		},
	}))
}

func TestRegistryPhases(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)
	require.Equal(t, Stats{Classes: 2, Fields: 3, Arrays: 1, Methods: 1}, r.Stats())
	require.False(t, r.Sealed())

	// first registrar wins
	err := r.RegisterClass(ClassFuncs{Name: "vec", New: func() any { return new(body) }})
	require.ErrorIs(t, err, ErrDuplicate)
	c, ok := r.Class("vec")
	require.True(t, ok)
	require.IsType(t, &vec{}, c.New())

	require.ErrorIs(t, r.RegisterArray(SliceOf[vec]("[]vec", "vec")), ErrDuplicate)
	require.ErrorIs(t, r.RegisterField(FieldFuncs{Owner: "body", Name: "Mass"}), ErrDuplicate)
	require.ErrorIs(t, r.RegisterMethod(MethodFuncs{Owner: "body", Name: "Weight", Invoke: func(any) []any { return nil }}), ErrDuplicate)
	require.ErrorIs(t, r.RegisterClass(ClassFuncs{Name: "nothing"}), ErrInvalidEntry)
	require.ErrorIs(t, r.RegisterArray(ArrayFuncs{}), ErrInvalidEntry)

	r.Seal()
	require.True(t, r.Sealed())
	err = r.RegisterClass(ClassOf[vec]("late", nil))
	require.ErrorIs(t, err, ErrRegistrySealed)
	_, ok = r.Class("late")
	require.False(t, ok)
	require.Equal(t, []string{"body", "vec"}, r.ClassNames())

	r.UnregisterAll()
	require.Equal(t, Stats{}, r.Stats())
	require.ErrorIs(t, r.RegisterClass(ClassOf[vec]("vec", nil)), ErrRegistryClosed)
	r.Seal()
	require.ErrorIs(t, r.RegisterArray(SliceOf[vec]("[]vec", "vec")), ErrRegistryClosed)
}

func TestVerify(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)
	require.NoError(t, r.Verify("vec", "body"))

	err := r.Verify("vec", "ghost", "phantom")
	require.ErrorIs(t, err, ErrNotFound)
	require.Len(t, multierr.Errors(err), 2)
}

func TestTypeMeta(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)

	m := r.Meta("body")
	require.True(t, m.IsValid())
	require.Equal(t, "body", m.TypeName())

	var names []string
	for _, f := range m.GetFieldsList() {
		names = append(names, f.FieldName())
	}
	require.Equal(t, []string{"mass", "points"}, names)

	inst := m.NewInstance()
	require.True(t, inst.IsValid())
	b := inst.Value.(*body)

	mass := m.GetFieldByName("mass")
	require.True(t, mass.IsValid())
	require.Equal(t, "Mass", mass.Identifier())
	require.Equal(t, "float64", mass.FieldTypeName())
	require.Equal(t, "body", mass.OwnerTypeName())
	require.Equal(t, "1", mass.DefaultValue())
	require.False(t, mass.IsArrayType())
	require.Equal(t, "body", mass.GetOwnerTypeMeta().TypeName())

	require.True(t, mass.Set(b, 2.5))
	require.Equal(t, 2.5, b.Mass)
	v := 4.0
	require.True(t, mass.Set(b, &v))
	require.Equal(t, 4.0, *mass.Get(b).(*float64))
	require.False(t, mass.Set(b, "heavy"), "wrong value type")
	require.False(t, mass.Set(&vec{}, 1.0), "wrong owner type")
	require.Nil(t, mass.Get(&vec{}))

	// identifier lookup works too
	require.Equal(t, "mass", m.GetFieldByName("Mass").FieldName())

	weight := m.GetMethodByName("Weight")
	require.True(t, weight.IsValid())
	require.Equal(t, "Weight", weight.MethodName())
	require.InDelta(t, 39.2, weight.Invoke(b)[0].(float64), 1e-9)
	require.Len(t, m.GetMethodsList(), 1)

	bases := m.GetBaseClassReflectionInstanceList(b)
	require.Len(t, bases, 1)
	require.Equal(t, "vec", bases[0].Meta.TypeName())
	require.True(t, bases[0].Meta.GetFieldByName("x").Set(bases[0].Value, 3.0))
	require.Equal(t, 3.0, b.X, "base instance points into the derived value")
	require.Nil(t, m.GetBaseClassReflectionInstanceList(&vec{}))
	require.Nil(t, r.Meta("vec").GetBaseClassReflectionInstanceList(&vec{}))
}

func TestLookupMissIsSafe(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)

	m := r.Meta("DoesNotExist")
	require.False(t, m.IsValid())
	require.Empty(t, m.GetFieldsList())
	require.False(t, m.NewInstance().IsValid())
	require.Nil(t, m.GetBaseClassReflectionInstanceList(&body{}))

	f := r.Meta("body").GetFieldByName("missing")
	require.False(t, f.IsValid())
	b := &body{Mass: 1}
	assert.Nil(t, f.Get(b))
	assert.False(t, f.Set(b, 9.0))
	assert.Equal(t, 1.0, b.Mass)
	assert.Equal(t, "", f.FieldName())
	assert.Equal(t, "", f.FieldTypeName())
	assert.False(t, f.GetTypeMeta().IsValid())
	assert.False(t, f.ArrayAccessor().IsValid())

	meth := r.Meta("body").GetMethodByName("Fly")
	assert.False(t, meth.IsValid())
	assert.Nil(t, meth.Invoke(b))

	arr := r.ArrayAccessor("[]ghost")
	assert.False(t, arr.IsValid())
	assert.Nil(t, arr.Get([]vec{{}}, 0))
	assert.Equal(t, 0, arr.GetSize([]vec{{}}))
	assert.False(t, arr.Set([]vec{{}}, 0, vec{}))
}

func TestArrayAccessor(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)

	b := &body{Points: []vec{{X: 1}, {X: 2}}}
	field := r.Meta("body").GetFieldByName("points")
	require.True(t, field.IsArrayType())
	require.Equal(t, "point", field.ElementName())
	require.Equal(t, "vec", field.GetTypeMeta().TypeName())

	arr := field.ArrayAccessor()
	require.True(t, arr.IsValid())
	require.Equal(t, "[]vec", arr.ArrayTypeName())
	require.Equal(t, "vec", arr.ElementTypeName())

	points := field.Get(b)
	require.Equal(t, 2, arr.GetSize(points))
	require.Equal(t, 2, arr.GetSize(b.Points))
	require.Equal(t, 2.0, arr.Get(points, 1).(*vec).X)
	require.True(t, arr.Set(points, 0, vec{X: 7}))
	require.Equal(t, 7.0, b.Points[0].X)

	require.Nil(t, arr.Get(points, 2))
	require.Nil(t, arr.Get(points, -1))
	require.False(t, arr.Set(points, 5, vec{}))
	require.Equal(t, 0, arr.GetSize("not a slice"))
}

func TestNewFromNameAndWriteByName(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)

	inst := r.NewFromNameAndJSON("body", gjson.Parse(`{"x":1,"y":2,"mass":3}`))
	require.True(t, inst.IsValid())
	require.Equal(t, "body", inst.Meta.TypeName())
	require.Equal(t, &body{vec: vec{X: 1, Y: 2}, Mass: 3}, inst.Value)

	require.False(t, r.NewFromNameAndJSON("ghost", gjson.Parse(`{}`)).IsValid())
	require.False(t, r.NewFromNameAndJSON("vec", gjson.Parse(`[]`)).IsValid(), "decode failure")

	_, err := r.Construct("ghost", gjson.Parse(`{}`))
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.Construct("vec", gjson.Parse(`[]`))
	require.ErrorContains(t, err, "vec: not an object")
	require.NotErrorIs(t, err, ErrNotFound)
	inst, err = r.Construct("vec", gjson.Parse(`{"x":4}`))
	require.NoError(t, err)
	require.Equal(t, &vec{X: 4}, inst.Value)

	out, err := r.WriteByName("vec", &vec{X: 1, Y: 2})
	require.NoError(t, err)
	require.JSONEq(t, `{"x":1,"y":2}`, string(out))

	_, err = r.WriteByName("ghost", &vec{})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.WriteByName("vec", &body{})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAssign(t *testing.T) {
	var s string
	require.True(t, Assign(&s, "a"))
	v := "b"
	require.True(t, Assign(&s, &v))
	require.Equal(t, "b", s)
	require.False(t, Assign(&s, (*string)(nil)))
	require.False(t, Assign(&s, 1))
	require.False(t, Assign[string](nil, "c"))

	var any0 any
	require.True(t, Assign(&any0, 42))
	require.Equal(t, 42, any0)
}

func TestLeafTypeName(t *testing.T) {
	cases := map[string]string{
		"Vector3":                     "Vector3",
		"[]Vector3":                   "Vector3",
		"*Shape":                      "Shape",
		"[]*Shape":                    "Shape",
		"reflection.Ptr[Component]":   "Component",
		"[]reflection.Ptr[Component]": "Component",
		"map[string]int":              "map[string]int",
	}
	for in, want := range cases {
		require.Equal(t, want, LeafTypeName(in), in)
	}
}
