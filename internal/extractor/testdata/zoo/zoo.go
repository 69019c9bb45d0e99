package zoo

import "github.com/cmmoran/reflgen/pkg/reflection"

// Pet only exposes fields that opt in.
//
//reflect:whitelist
type Pet struct {
	Name  string `reflect:"enable,name:petName"`
	Age   int
	ID    int `reflect:"enable,default:7"`
	Owner reflection.Ptr[Keeper] `reflect:"enable"`
}

type Keeper interface {
	Feed()
}

//reflect:fields,methods
type Vector3 struct {
	X, Y, Z float32
	m_Norm  float32 `reflect:"disable"`
}

func (v Vector3) Len() float32 { return 0 }

//reflect:disable
func (v Vector3) Hidden() float32 { return 0 }

func (v *Vector3) Add(o Vector3) {}

//reflect:fields
type Cage struct {
	Pet
	Points   []Vector3
	Lookup   map[string]int
	Sibling  *Cage
	m_Weight float32
}

type Plain struct {
	Name string
}
