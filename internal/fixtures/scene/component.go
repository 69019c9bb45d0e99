package scene

import "github.com/cmmoran/reflgen/pkg/reflection"

// Component is attached to a GameObject through a polymorphic handle.
type Component interface {
	reflection.Reflectable
	Base() *ComponentBase
}

//reflect:fields
type ComponentBase struct {
	Name    string
	Enabled bool `reflect:"name:isEnabled"`
}

func (c *ComponentBase) Base() *ComponentBase { return c }

//reflect:fields
type Material struct {
	Shader string
	Tint   Vector3
}

//reflect:fields
type MeshComponent struct {
	ComponentBase
	Vertices []Vector3
	Material *Material
	Lod      int32 `reflect:"default:0"`
}

// RigidBody only reflects its simulation inputs.
//
//reflect:whitelist
type RigidBody struct {
	ComponentBase
	Mass     float64 `reflect:"enable,default:1"`
	Velocity Vector3 `reflect:"enable"`
	Sleeping bool
	// OnRelease runs when a handle holding the body is released.
	OnRelease func()
}

func (b *RigidBody) Destroy() {
	if b.OnRelease != nil {
		b.OnRelease()
	}
}
