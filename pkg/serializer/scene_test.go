package serializer_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/cmmoran/reflgen/internal/fixtures/scene"
	"github.com/cmmoran/reflgen/internal/fixtures/scene/sceneindex"
	"github.com/cmmoran/reflgen/pkg/reflection"
	"github.com/cmmoran/reflgen/pkg/serializer"
)

func TestMain(m *testing.M) {
	if err := sceneindex.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

// sceneOpts compares Ptr handles and time values by what they hold.
var sceneOpts = cmp.Options{
	cmp.Comparer(func(a, b reflection.Ptr[scene.Component]) bool {
		return a.TypeName() == b.TypeName() && cmp.Equal(a.Get(), b.Get(), cmp.Comparer(func(x, y func()) bool { return (x == nil) == (y == nil) }))
	}),
	cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
	cmp.AllowUnexported(scene.GameObject{}),
}

func TestTransformEndToEnd(t *testing.T) {
	in := scene.Transform{
		Position: scene.Vector3{X: 1, Y: 2, Z: 3},
		Rotation: scene.Quaternion{W: 1},
		Scale:    scene.Vector3{X: 1, Y: 1, Z: 1},
	}
	raw, err := serializer.Marshal(&in)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"position": {"x":1,"y":2,"z":3},
		"rotation": {"w":1,"x":0,"y":0,"z":0},
		"scale":    {"x":1,"y":1,"z":1}
	}`, string(raw))

	var out scene.Transform
	require.NoError(t, serializer.Unmarshal(raw, &out))
	require.Equal(t, in, out)

	meta := reflection.NewMetaFromName("Transform")
	var names []string
	for _, f := range meta.GetFieldsList() {
		names = append(names, f.FieldName())
	}
	require.Equal(t, []string{"position", "rotation", "scale"}, names)
}

func TestPolymorphicRoundTrip(t *testing.T) {
	mesh := &scene.MeshComponent{
		ComponentBase: scene.ComponentBase{Name: "hull", Enabled: true},
		Vertices:      []scene.Vector3{{X: 1}, {Y: 1}, {Z: 1}},
		Material:      &scene.Material{Shader: "pbr", Tint: scene.Vector3{X: 0.5}},
		Lod:           2,
	}
	handle := reflection.PtrOf[scene.Component](mesh)

	raw, err := serializer.WritePolymorphic(&handle)
	require.NoError(t, err)
	doc := gjson.ParseBytes(raw)
	require.Equal(t, "MeshComponent", doc.Get(`\$typeName`).String())
	require.Equal(t, "hull", doc.Get(`\$context.name`).String(), "base fields are merged flat")
	require.Equal(t, "*", doc.Get(`\$context.material.\$typeName`).String())

	var back reflection.Ptr[scene.Component]
	require.NoError(t, serializer.ReadPolymorphic(doc, &back))
	require.Equal(t, "MeshComponent", back.TypeName())
	got, ok := back.Get().(*scene.MeshComponent)
	require.True(t, ok, "derived type is reconstructed, got %T", back.Get())
	require.Equal(t, mesh, got)
	require.NotSame(t, mesh.Material, got.Material)
}

func TestUnregisteredPolymorphicReadsNil(t *testing.T) {
	h := reflection.PtrOf[scene.Component](&scene.RigidBody{})
	doc := gjson.Parse(`{"$typeName":"Ghost","$context":{"name":"boo"}}`)
	require.NoError(t, serializer.ReadPolymorphic(doc, &h))
	require.True(t, h.IsNil())
	require.Equal(t, "", h.TypeName())

	// a registered class that does not implement Component
	doc = gjson.Parse(`{"$typeName":"Vector3","$context":{"x":1}}`)
	require.ErrorIs(t, serializer.ReadPolymorphic(doc, &h), reflection.ErrTypeMismatch)

	raw, err := serializer.WritePolymorphic(&reflection.Ptr[scene.Component]{})
	require.NoError(t, err)
	require.Equal(t, "null", string(raw))
}

func TestPolymorphicDecodeFailure(t *testing.T) {
	h := reflection.PtrOf[scene.Component](&scene.RigidBody{Mass: 2})
	doc := gjson.Parse(`{"$typeName":"RigidBody","$context":{"mass":"heavy"}}`)
	err := serializer.ReadPolymorphic(doc, &h)
	require.ErrorIs(t, err, serializer.ErrKind)
	require.ErrorContains(t, err, "mass")
	require.False(t, h.IsNil(), "a failed read leaves the handle alone")
	require.Equal(t, 2.0, h.Get().(*scene.RigidBody).Mass)

	// the plain pointer codec reports the same kind of failure
	var m *scene.Material
	doc = gjson.Parse(`{"$typeName":"*","$context":{"shader":7}}`)
	require.ErrorIs(t, serializer.ReadPointer(serializer.Read[scene.Material])(doc, &m), serializer.ErrKind)
	require.Nil(t, m)
}

func TestGameObjectRoundTrip(t *testing.T) {
	child := &scene.GameObject{ID: 2, Name: "wheel", Tags: []string{}}
	in := scene.GameObject{
		ID:   1,
		Name: "car",
		Transform: scene.Transform{
			Position: scene.Vector3{X: 1, Y: 2, Z: 3},
			Rotation: scene.Quaternion{W: 1},
			Scale:    scene.Vector3{X: 2, Y: 2, Z: 2},
		},
		Components: []reflection.Ptr[scene.Component]{
			reflection.PtrOf[scene.Component](&scene.RigidBody{ComponentBase: scene.ComponentBase{Name: "body"}, Mass: 1200}),
			reflection.PtrOf[scene.Component](&scene.MeshComponent{Vertices: []scene.Vector3{{X: 1}}}),
			{},
		},
		Primary:  reflection.PtrOf[scene.Component](&scene.ComponentBase{Name: "root", Enabled: true}),
		Children: []*scene.GameObject{child, nil},
		Tags:     []string{"vehicle", "red"},
		Created:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	raw, err := serializer.Marshal(&in)
	require.NoError(t, err)
	require.False(t, gjson.GetBytes(raw, "lookup").Exists(), "unsupported field types are not serialized")
	require.Equal(t, "RigidBody", gjson.GetBytes(raw, `components.0.\$typeName`).String())

	var out scene.GameObject
	require.NoError(t, serializer.Unmarshal(raw, &out))
	if diff := cmp.Diff(in, out, sceneOpts); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}

	again, err := serializer.Marshal(&out)
	require.NoError(t, err)
	require.JSONEq(t, string(raw), string(again), "writing is idempotent")
}

func TestWhitelistSerializesEnabledFieldsOnly(t *testing.T) {
	body := &scene.RigidBody{Mass: 3, Sleeping: true, Velocity: scene.Vector3{Z: 1}}
	raw, err := serializer.Marshal(body)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"","isEnabled":false,"mass":3,"velocity":{"x":0,"y":0,"z":1}}`, string(raw))
}

func TestReadReportsFieldErrors(t *testing.T) {
	var tr scene.Transform
	err := serializer.Unmarshal([]byte(`{"position":{"x":"one"},"scale":{"y":2}}`), &tr)
	require.ErrorIs(t, err, serializer.ErrKind)
	require.ErrorContains(t, err, "position")
	require.Equal(t, float32(2), tr.Scale.Y, "later fields are still read")
}

func TestRegistrySealedAfterLoad(t *testing.T) {
	require.True(t, reflection.Default().Sealed())
	err := reflection.RegisterClass(reflection.ClassOf[scene.Vector3]("Late", nil))
	require.ErrorIs(t, err, reflection.ErrRegistrySealed)
}
