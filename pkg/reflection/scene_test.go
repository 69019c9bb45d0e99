package reflection_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/cmmoran/reflgen/internal/fixtures/scene"
	"github.com/cmmoran/reflgen/internal/fixtures/scene/sceneindex"
	"github.com/cmmoran/reflgen/pkg/reflection"
)

func fieldNames(m reflection.TypeMeta) []string {
	var out []string
	for _, f := range m.GetFieldsList() {
		out = append(out, f.FieldName())
	}
	return out
}

func TestGeneratedRegistrations(t *testing.T) {
	require.NoError(t, reflection.Default().Verify(sceneindex.Classes...))
	require.ElementsMatch(t, sceneindex.Classes, reflection.Default().ClassNames())

	// []Vector3 is registered by three fields in two files
	stats := reflection.Default().Stats()
	require.Equal(t, 4, stats.Arrays)
	require.Equal(t, 9, stats.Classes)
	require.Equal(t, 2, stats.Methods)

	arr := reflection.NewArrayAccessor("[]Vector3")
	require.True(t, arr.IsValid())
	require.Equal(t, "Vector3", arr.ElementTypeName())
}

func TestTransformMeta(t *testing.T) {
	m := reflection.NewMetaFromName("Transform")
	require.True(t, m.IsValid())
	require.Equal(t, []string{"position", "rotation", "scale"}, fieldNames(m))

	tr := m.NewInstance().Value.(*scene.Transform)
	require.True(t, m.GetFieldByName("position").Set(tr, scene.Vector3{X: 1, Y: 2, Z: 3}))
	require.Equal(t, scene.Vector3{X: 1, Y: 2, Z: 3}, tr.Position)
	require.Equal(t, "1,1,1", m.GetFieldByName("scale").DefaultValue())

	pos := m.GetFieldByName("position")
	require.Equal(t, "Vector3", pos.GetTypeMeta().TypeName())
	require.Equal(t, []string{"x", "y", "z"}, fieldNames(pos.GetTypeMeta()))

	// walk into the nested struct through the returned pointer
	y := pos.GetTypeMeta().GetFieldByName("y")
	require.Equal(t, float32(2), *y.Get(pos.Get(tr)).(*float32))

	ident := m.GetMethodByName("IsIdentity")
	require.Equal(t, []any{false}, ident.Invoke(tr))
	*tr = scene.Transform{Rotation: scene.Quaternion{W: 1}, Scale: scene.Vector3{X: 1, Y: 1, Z: 1}}
	require.Equal(t, []any{true}, ident.Invoke(tr))
}

func TestVisibility(t *testing.T) {
	// disable removes only the marked field
	require.Equal(t,
		[]string{"id", "name", "transform", "components", "primary", "children", "tags", "created", "lookup"},
		fieldNames(reflection.NewMetaFromName("GameObject")))

	// whitelist keeps exactly the enabled fields
	require.Equal(t, []string{"mass", "velocity"}, fieldNames(reflection.NewMetaFromName("RigidBody")))

	methods := reflection.NewMetaFromName("GameObject").GetMethodsList()
	require.Len(t, methods, 1)
	require.Equal(t, "ComponentCount", methods[0].MethodName())
}

func TestBaseInstances(t *testing.T) {
	mesh := &scene.MeshComponent{ComponentBase: scene.ComponentBase{Name: "hull"}}
	bases := reflection.NewMetaFromName("MeshComponent").GetBaseClassReflectionInstanceList(mesh)
	require.Len(t, bases, 1)
	require.Equal(t, "ComponentBase", bases[0].Meta.TypeName())

	name := bases[0].Meta.GetFieldByName("name")
	require.Equal(t, "hull", *name.Get(bases[0].Value).(*string))
	require.True(t, bases[0].Meta.GetFieldByName("isEnabled").Set(bases[0].Value, true))
	require.True(t, mesh.Enabled)
}

func TestArrayFieldAccess(t *testing.T) {
	p := &scene.Path{Points: []scene.Vector3{{X: 1}, {X: 2}, {X: 3}}}
	field := reflection.NewMetaFromName("Path").GetFieldByName("points")
	require.True(t, field.IsArrayType())
	require.Equal(t, "point", field.ElementName())

	arr := field.ArrayAccessor()
	require.Equal(t, 3, arr.GetSize(field.Get(p)))
	require.True(t, arr.Set(field.Get(p), 2, &scene.Vector3{X: 9}))
	require.Equal(t, float32(9), p.Points[2].X)
	require.Nil(t, arr.Get(field.Get(p), 3))
}

func TestNewFromNameAndJSON(t *testing.T) {
	inst := reflection.NewFromNameAndJSON("RigidBody", gjson.Parse(`{"name":"crate","isEnabled":true,"mass":4,"velocity":{"x":1,"y":0,"z":0}}`))
	require.True(t, inst.IsValid())
	body := inst.Value.(*scene.RigidBody)
	require.Equal(t, "crate", body.Name)
	require.True(t, body.Enabled)
	require.Equal(t, 4.0, body.Mass)
	require.Equal(t, float32(1), body.Velocity.X)

	raw, err := reflection.WriteByName("RigidBody", body)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"crate","isEnabled":true,"mass":4,"velocity":{"x":1,"y":0,"z":0}}`, string(raw))

	require.False(t, reflection.NewFromNameAndJSON("DoesNotExist", gjson.Parse(`{}`)).IsValid())
	require.False(t, reflection.NewMetaFromName("DoesNotExist").IsValid())
}

func TestReleaseGeneratedClass(t *testing.T) {
	released := 0
	p := reflection.PtrOf[scene.Component](&scene.RigidBody{OnRelease: func() { released++ }})
	require.Equal(t, "RigidBody", p.TypeName())
	require.True(t, p.Release())
	require.Equal(t, 1, released)
	require.True(t, p.IsNil())

	mesh, ok := reflection.Cast[*scene.MeshComponent](reflection.PtrOf[scene.Component](&scene.MeshComponent{Lod: 2}))
	require.True(t, ok)
	require.Equal(t, int32(2), mesh.Get().Lod)
	require.Equal(t, "MeshComponent", mesh.TypeName())
}
