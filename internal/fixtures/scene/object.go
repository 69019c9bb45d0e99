package scene

import (
	"time"

	"github.com/cmmoran/reflgen/pkg/reflection"
)

// GameObject is a node of the scene graph.
//
//reflect:all
type GameObject struct {
	ID         uint64
	Name       string
	Transform  Transform
	Components []reflection.Ptr[Component]
	Primary    reflection.Ptr[Component]
	Children   []*GameObject
	Tags       []string
	Created    time.Time
	Lookup     map[string]int
	scratch    []byte `reflect:"disable"`
}

func (g *GameObject) ComponentCount() int {
	return len(g.Components)
}

//reflect:disable
func (g *GameObject) Reset() {
	*g = GameObject{scratch: g.scratch[:0]}
}

func (g *GameObject) Attach(c Component) {
	g.Components = append(g.Components, reflection.PtrOf(c))
}
