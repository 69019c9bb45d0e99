package serializer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/cmmoran/reflgen/pkg/reflection"
)

const (
	KeyTypeName = "$typeName"
	KeyContext  = "$context"
	// PointerTypeName marks a plain, non-polymorphic pointer envelope.
	PointerTypeName = "*"
)

var (
	ErrUnsupportedType = errors.New("serializer: unsupported type")
	ErrEnvelope        = errors.New("serializer: malformed envelope")
	ErrKind            = errors.New("serializer: unexpected json kind")
	ErrRange           = errors.New("serializer: number out of range")
)

// Marshaler and Unmarshaler are implemented by generated code.
type Marshaler interface {
	WriteReflect() (json.RawMessage, error)
}

type Unmarshaler interface {
	ReadReflect(doc gjson.Result) error
}

// Serializable is the full capability set of a generated class.
type Serializable interface {
	reflection.Reflectable
	Marshaler
	Unmarshaler
}

// Write encodes primitives, generated classes and json.Marshaler values.
// Anything else fails with ErrUnsupportedType, as do NaN and infinite floats.
func Write[T any](v *T) (json.RawMessage, error) {
	if v == nil {
		return nil, fmt.Errorf("write nil %T: %w", v, ErrUnsupportedType)
	}
	switch x := any(v).(type) {
	case *bool, *string,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64:
		return json.Marshal(x)
	case *float32:
		return writeFloat(float64(*x), x)
	case *float64:
		return writeFloat(*x, x)
	case Marshaler:
		return x.WriteReflect()
	case json.Marshaler:
		return x.MarshalJSON()
	}
	return nil, fmt.Errorf("write %T: %w", *v, ErrUnsupportedType)
}

// Read mirrors Write. A missing document leaves v unchanged.
func Read[T any](doc gjson.Result, v *T) error {
	if v == nil {
		return fmt.Errorf("read into nil %T: %w", v, ErrUnsupportedType)
	}
	if !doc.Exists() {
		return nil
	}
	switch x := any(v).(type) {
	case *bool:
		if doc.Type != gjson.True && doc.Type != gjson.False {
			return kindError(doc, "bool")
		}
		*x = doc.Bool()
	case *string:
		if doc.Type != gjson.String {
			return kindError(doc, "string")
		}
		*x = doc.String()
	case *int:
		return readInt(doc, x)
	case *int8:
		return readInt(doc, x)
	case *int16:
		return readInt(doc, x)
	case *int32:
		return readInt(doc, x)
	case *int64:
		return readInt(doc, x)
	case *uint:
		return readUint(doc, x)
	case *uint8:
		return readUint(doc, x)
	case *uint16:
		return readUint(doc, x)
	case *uint32:
		return readUint(doc, x)
	case *uint64:
		return readUint(doc, x)
	case *float32:
		if err := numberKind(doc, x); err != nil {
			return err
		}
		if math.Abs(doc.Num) > math.MaxFloat32 {
			return rangeError(doc, x)
		}
		*x = float32(doc.Num)
	case *float64:
		if err := numberKind(doc, x); err != nil {
			return err
		}
		*x = doc.Num
	case Unmarshaler:
		return x.ReadReflect(doc)
	case json.Unmarshaler:
		return x.UnmarshalJSON([]byte(doc.Raw))
	default:
		return fmt.Errorf("read %T: %w", *v, ErrUnsupportedType)
	}
	return nil
}

func writeFloat[F float32 | float64](f float64, v *F) (json.RawMessage, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("write %T %v: %w", *v, f, ErrUnsupportedType)
	}
	return json.Marshal(v)
}

func numberKind[N any](doc gjson.Result, dst *N) error {
	if doc.Type != gjson.Number {
		return kindError(doc, fmt.Sprintf("%T", *dst))
	}
	return nil
}

func rangeError[N any](doc gjson.Result, dst *N) error {
	return fmt.Errorf("%s does not fit %T: %w", doc.Raw, *dst, ErrRange)
}

// readInt rejects fractions and values that do not survive the conversion
// to N. Integral exponent forms such as 1e3 are accepted.
func readInt[N ~int | ~int8 | ~int16 | ~int32 | ~int64](doc gjson.Result, dst *N) error {
	if err := numberKind(doc, dst); err != nil {
		return err
	}
	i, err := strconv.ParseInt(doc.Raw, 10, 64)
	if err != nil {
		f := doc.Num
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return rangeError(doc, dst)
		}
		i = int64(f)
	}
	if int64(N(i)) != i {
		return rangeError(doc, dst)
	}
	*dst = N(i)
	return nil
}

func readUint[N ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](doc gjson.Result, dst *N) error {
	if err := numberKind(doc, dst); err != nil {
		return err
	}
	u, err := strconv.ParseUint(doc.Raw, 10, 64)
	if err != nil {
		f := doc.Num
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return rangeError(doc, dst)
		}
		u = uint64(f)
	}
	if uint64(N(u)) != u {
		return rangeError(doc, dst)
	}
	*dst = N(u)
	return nil
}

func kindError(doc gjson.Result, want string) error {
	return fmt.Errorf("want %s, got %s: %w", want, doc.Type, ErrKind)
}

// WritePointer wraps elem in the "*" envelope. A nil pointer writes null.
func WritePointer[T any](elem func(*T) (json.RawMessage, error)) func(**T) (json.RawMessage, error) {
	return func(v **T) (json.RawMessage, error) {
		if v == nil || *v == nil {
			return json.RawMessage("null"), nil
		}
		ctx, err := elem(*v)
		if err != nil {
			return nil, err
		}
		return envelope(PointerTypeName, ctx)
	}
}

// ReadPointer allocates a new T for every "*" envelope; null reads as nil.
func ReadPointer[T any](elem func(gjson.Result, *T) error) func(gjson.Result, **T) error {
	return func(doc gjson.Result, v **T) error {
		if !doc.Exists() {
			return nil
		}
		if doc.Type == gjson.Null {
			*v = nil
			return nil
		}
		name, ctx, err := openEnvelope(doc)
		if err != nil {
			return err
		}
		if name != PointerTypeName {
			return fmt.Errorf("pointer envelope has type %q: %w", name, ErrEnvelope)
		}
		n := new(T)
		if err = elem(ctx, n); err != nil {
			return err
		}
		*v = n
		return nil
	}
}

// WriteSlice encodes a slice as a JSON array. A nil slice writes null so
// that nil and empty slices survive a round trip.
func WriteSlice[T any](elem func(*T) (json.RawMessage, error)) func(*[]T) (json.RawMessage, error) {
	return func(v *[]T) (json.RawMessage, error) {
		if v == nil || *v == nil {
			return json.RawMessage("null"), nil
		}
		arr := NewArray()
		for i := range *v {
			arr.Append(elem(&(*v)[i]))
		}
		return arr.Bytes()
	}
}

// ReadSlice replaces *v with the decoded array. null reads as a nil slice.
func ReadSlice[T any](elem func(gjson.Result, *T) error) func(gjson.Result, *[]T) error {
	return func(doc gjson.Result, v *[]T) error {
		if !doc.Exists() {
			return nil
		}
		if doc.Type == gjson.Null {
			*v = nil
			return nil
		}
		if !doc.IsArray() {
			return kindError(doc, "array")
		}
		items := doc.Array()
		out := make([]T, len(items))
		for i, item := range items {
			if err := elem(item, &out[i]); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		*v = out
		return nil
	}
}

// WritePolymorphic encodes the handle's value through the registry entry of
// its recorded type name.
func WritePolymorphic[T any](v *reflection.Ptr[T]) (json.RawMessage, error) {
	if v == nil || v.IsNil() {
		return json.RawMessage("null"), nil
	}
	ctx, err := reflection.WriteByName(v.TypeName(), any(v.Get()))
	if err != nil {
		return nil, err
	}
	return envelope(v.TypeName(), ctx)
}

// ReadPolymorphic constructs the recorded type through the registry. An
// unregistered type name reads as a nil handle; a registered type whose
// context fails to decode is an error.
func ReadPolymorphic[T any](doc gjson.Result, v *reflection.Ptr[T]) error {
	if !doc.Exists() {
		return nil
	}
	if doc.Type == gjson.Null {
		*v = reflection.Ptr[T]{}
		return nil
	}
	name, ctx, err := openEnvelope(doc)
	if err != nil {
		return err
	}
	inst, err := reflection.Construct(name, ctx)
	if errors.Is(err, reflection.ErrNotFound) {
		slog.Debug("unresolved polymorphic type", "type", name)
		*v = reflection.Ptr[T]{}
		return nil
	}
	if err != nil {
		return err
	}
	value, ok := inst.Value.(T)
	if !ok {
		return fmt.Errorf("read %s into %T: %w", name, v, reflection.ErrTypeMismatch)
	}
	v.Set(name, value)
	return nil
}

func envelope(typeName string, ctx json.RawMessage) (json.RawMessage, error) {
	return NewObject().
		SetString(KeyTypeName, typeName).
		Set(KeyContext, ctx, nil).
		Bytes()
}

func openEnvelope(doc gjson.Result) (string, gjson.Result, error) {
	if !doc.IsObject() {
		return "", gjson.Result{}, kindError(doc, "envelope object")
	}
	name := doc.Get(escapeKey(KeyTypeName))
	if name.Type != gjson.String {
		return "", gjson.Result{}, fmt.Errorf("missing %s: %w", KeyTypeName, ErrEnvelope)
	}
	return name.String(), doc.Get(escapeKey(KeyContext)), nil
}

// Marshal writes v as a standalone document.
func Marshal(v Marshaler) (json.RawMessage, error) {
	if v == nil {
		return nil, fmt.Errorf("marshal nil: %w", ErrUnsupportedType)
	}
	return v.WriteReflect()
}

// Unmarshal validates data and reads it into v.
func Unmarshal(data []byte, v Unmarshaler) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("unmarshal: invalid json: %w", ErrKind)
	}
	return v.ReadReflect(gjson.ParseBytes(data))
}
