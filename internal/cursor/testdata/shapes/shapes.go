package shapes

import (
	"time"

	geo "github.com/example/geometry"
)

// Shape is reflected in full.
//
//reflect:all
type Shape struct {
	Named
	*Hidden
	Origin   geo.Vector3 `reflect:"default:'0,0,0'"`
	Tags     []string
	X, Y     float64 `json:"xy" reflect:"disable"`
	_        int
	Created  time.Time
	children []*Shape
}

type Named struct {
	Name string
}

type Hidden struct{}

type Alias = Named

type Box[T any] struct {
	Item T
}

type Kind int

// Area reports the shape's area.
//
//reflect:enable
func (s *Shape) Area() float64 { return 0 }

func (s Shape) Scale(f float64) (Shape, error) { return s, nil }
