package scene

//reflect:fields
type Vector3 struct {
	X, Y, Z float32
}

//reflect:fields
type Quaternion struct {
	W, X, Y, Z float32
}

// Transform places an object in the scene.
//
//reflect:all
type Transform struct {
	Position Vector3    `reflect:"default:'0,0,0'"`
	Rotation Quaternion `reflect:"default:'1,0,0,0'"`
	Scale    Vector3    `reflect:"default:'1,1,1'"`
}

// IsIdentity reports whether t leaves points unchanged.
func (t *Transform) IsIdentity() bool {
	return t.Position == Vector3{} && t.Rotation == Quaternion{W: 1} && t.Scale == Vector3{X: 1, Y: 1, Z: 1}
}

// Path is a polyline with optional per-point normals.
//
//reflect:fields
type Path struct {
	Points  []Vector3
	Normals []Vector3
	Closed  bool
}
