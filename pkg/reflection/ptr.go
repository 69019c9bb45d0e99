package reflection

import (
	"reflect"
)

// Ptr is a polymorphic handle: a value of declared type T (usually an
// interface) plus the registered name of its concrete class.
type Ptr[T any] struct {
	typeName string
	v        T
}

func NewPtr[T any](typeName string, v T) Ptr[T] {
	return Ptr[T]{typeName: typeName, v: v}
}

// PtrOf records the name reported by v's ReflectTypeName.
func PtrOf[T any](v T) Ptr[T] {
	var name string
	if r, ok := any(v).(Reflectable); ok && !isNil(v) {
		name = r.ReflectTypeName()
	}
	return Ptr[T]{typeName: name, v: v}
}

func (p Ptr[T]) Get() T {
	return p.v
}

func (p Ptr[T]) TypeName() string {
	return p.typeName
}

func (p Ptr[T]) IsNil() bool {
	return isNil(p.v)
}

func (p *Ptr[T]) Set(typeName string, v T) {
	p.typeName = typeName
	p.v = v
}

// Cast re-stores the value of p under the static type U, keeping the
// recorded type name. A nil handle casts to a nil handle.
func Cast[U, T any](p Ptr[T]) (Ptr[U], bool) {
	if p.IsNil() {
		return Ptr[U]{typeName: p.typeName}, true
	}
	u, ok := any(p.v).(U)
	if !ok {
		return Ptr[U]{}, false
	}
	return Ptr[U]{typeName: p.typeName, v: u}, true
}

// Release destroys the pointee through the default registry and zeroes p.
func (p *Ptr[T]) Release() bool {
	return p.ReleaseIn(Default())
}

// ReleaseIn destroys the pointee through the class registered under the
// recorded name. An unregistered name leaves p untouched and returns false.
func (p *Ptr[T]) ReleaseIn(r *Registry) bool {
	if p.IsNil() {
		*p = Ptr[T]{}
		return true
	}
	if !r.Destroy(p.typeName, any(p.v)) {
		return false
	}
	*p = Ptr[T]{}
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
