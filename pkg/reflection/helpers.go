package reflection

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Reflectable is implemented by every generated class.
type Reflectable interface {
	ReflectTypeName() string
}

// Codec is the pair of generated serializer methods.
type Codec interface {
	WriteReflect() (json.RawMessage, error)
	ReadReflect(doc gjson.Result) error
}

// Destroyer is called by Release and Registry.Destroy when implemented by
// an instance.
type Destroyer interface {
	Destroy()
}

// ClassOf builds the class entry of T. bases may be nil for classes without
// reflected bases.
func ClassOf[T any, PT interface {
	*T
	Codec
}](name string, bases func(*T) []Base) ClassFuncs {
	c := ClassFuncs{
		Name: name,
		New:  func() any { return PT(new(T)) },
		ConstructFromJSON: func(doc gjson.Result) (any, error) {
			v := PT(new(T))
			if err := v.ReadReflect(doc); err != nil {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
			return v, nil
		},
		WriteByName: func(inst any) (json.RawMessage, error) {
			v, ok := inst.(*T)
			if !ok || v == nil {
				return nil, fmt.Errorf("write %s as %T: %w", name, inst, ErrTypeMismatch)
			}
			return PT(v).WriteReflect()
		},
		Destroy: DestroyInstance,
	}
	if bases != nil {
		c.Bases = func(inst any) []Base {
			v, ok := inst.(*T)
			if !ok || v == nil {
				return nil
			}
			return bases(v)
		}
	}
	return c
}

// DestroyInstance calls Destroy on inst when it is a Destroyer.
func DestroyInstance(inst any) {
	if d, ok := inst.(Destroyer); ok {
		d.Destroy()
	}
}

// Assign stores v into dst. v may be a T or a non-nil *T.
func Assign[T any](dst *T, v any) bool {
	if dst == nil {
		return false
	}
	switch x := v.(type) {
	case T:
		*dst = x
	case *T:
		if x == nil {
			return false
		}
		*dst = *x
	default:
		return false
	}
	return true
}

// SliceOf builds the array entry for []E. Accessors take either the slice or
// a pointer to it; out of range indexes read as nil and are not written.
func SliceOf[E any](typeName, elemTypeName string) ArrayFuncs {
	return ArrayFuncs{
		TypeName:        typeName,
		ElementTypeName: elemTypeName,
		Get: func(arr any, i int) any {
			s, ok := asSlice[E](arr)
			if !ok || i < 0 || i >= len(s) {
				return nil
			}
			return &s[i]
		},
		Set: func(arr any, i int, v any) bool {
			s, ok := asSlice[E](arr)
			if !ok || i < 0 || i >= len(s) {
				return false
			}
			return Assign(&s[i], v)
		},
		Size: func(arr any) int {
			s, _ := asSlice[E](arr)
			return len(s)
		},
	}
}

func asSlice[E any](arr any) ([]E, bool) {
	switch s := arr.(type) {
	case []E:
		return s, true
	case *[]E:
		if s == nil {
			return nil, false
		}
		return *s, true
	}
	return nil, false
}
