package reflection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mover interface {
	Weight() float64
}

func TestPtr(t *testing.T) {
	var p Ptr[mover]
	require.True(t, p.IsNil())
	require.Equal(t, "", p.TypeName())

	b := &body{Mass: 2}
	p = PtrOf[mover](b)
	require.False(t, p.IsNil())
	require.Equal(t, "body", p.TypeName())
	require.Same(t, b, p.Get())

	p.Set("vec-ish", b)
	require.Equal(t, "vec-ish", p.TypeName())

	named := NewPtr[mover]("body", b)
	require.Equal(t, "body", named.TypeName())

	// typed nil pointer inside an interface still counts as nil
	require.True(t, NewPtr[mover]("body", (*body)(nil)).IsNil())
	require.Equal(t, "", PtrOf[mover]((*body)(nil)).TypeName())
}

func TestCast(t *testing.T) {
	b := &body{Mass: 1}
	p := NewPtr[mover]("body", b)

	concrete, ok := Cast[*body](p)
	require.True(t, ok)
	require.Same(t, b, concrete.Get())
	require.Equal(t, "body", concrete.TypeName())

	back, ok := Cast[mover](concrete)
	require.True(t, ok)
	require.Equal(t, p, back)

	_, ok = Cast[*vec](p)
	require.False(t, ok)

	empty, ok := Cast[*body](Ptr[mover]{})
	require.True(t, ok)
	require.True(t, empty.IsNil())
}

func TestRelease(t *testing.T) {
	r := NewRegistry()
	registerTestTypes(t, r)

	destroyed := 0
	p := NewPtr[mover]("body", &body{destroyed: &destroyed})
	require.True(t, p.ReleaseIn(r))
	require.Equal(t, 1, destroyed)
	require.True(t, p.IsNil())
	require.Equal(t, "", p.TypeName())

	// releasing a nil handle is harmless
	require.True(t, p.ReleaseIn(r))
	require.Equal(t, 1, destroyed)

	ghost := NewPtr[mover]("ghost", &body{destroyed: &destroyed})
	require.False(t, ghost.ReleaseIn(r))
	require.Equal(t, 1, destroyed)
	require.False(t, ghost.IsNil(), "unregistered names are left alone")

	// classes without a Destroy method are still released
	v := NewPtr[any]("vec", &vec{})
	require.True(t, v.ReleaseIn(r))
	require.True(t, v.IsNil())
}
