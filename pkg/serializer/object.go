package serializer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/multierr"
)

// Object builds a JSON object in insertion order. The first error passed to
// Set or Merge is kept and returned by Bytes.
type Object struct {
	raw []byte
	err error
}

func NewObject() *Object {
	return &Object{raw: []byte("{}")}
}

// Set stores raw under key. A non-nil err is recorded instead:
//
//	raw, err := serializer.Write(&t.Position)
//	obj.Set("position", raw, err)
func (o *Object) Set(key string, raw json.RawMessage, err error) *Object {
	if o.err != nil {
		return o
	}
	if err != nil {
		o.err = fmt.Errorf("%s: %w", key, err)
		return o
	}
	o.raw, o.err = sjson.SetRawBytes(o.raw, escapeKey(key), raw)
	return o
}

func (o *Object) SetString(key, value string) *Object {
	if o.err != nil {
		return o
	}
	o.raw, o.err = sjson.SetBytes(o.raw, escapeKey(key), value)
	return o
}

// Merge copies every key of the object raw into o. Base classes are merged
// flat into the derived object this way.
func (o *Object) Merge(raw json.RawMessage, err error) *Object {
	if o.err != nil {
		return o
	}
	if err != nil {
		o.err = err
		return o
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		o.err = kindError(doc, "object")
		return o
	}
	doc.ForEach(func(k, v gjson.Result) bool {
		o.raw, o.err = sjson.SetRawBytes(o.raw, escapeKey(k.String()), []byte(v.Raw))
		return o.err == nil
	})
	return o
}

func (o *Object) Bytes() (json.RawMessage, error) {
	if o.err != nil {
		return nil, o.err
	}
	return json.RawMessage(o.raw), nil
}

// Field writes one field of a generated class.
func Field[T any](o *Object, key string, v *T, w func(*T) (json.RawMessage, error)) {
	raw, err := w(v)
	o.Set(key, raw, err)
}

// Array builds a JSON array.
type Array struct {
	items [][]byte
	err   error
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Append(raw json.RawMessage, err error) *Array {
	if a.err != nil {
		return a
	}
	if err != nil {
		a.err = fmt.Errorf("index %d: %w", len(a.items), err)
		return a
	}
	a.items = append(a.items, raw)
	return a
}

func (a *Array) Bytes() (json.RawMessage, error) {
	if a.err != nil {
		return nil, a.err
	}
	raw := []byte("[]")
	for _, item := range a.items {
		var err error
		if raw, err = sjson.SetRawBytes(raw, "-1", item); err != nil {
			return nil, err
		}
	}
	return json.RawMessage(raw), nil
}

// Reader reads the fields of one object document and collects every error.
type Reader struct {
	doc gjson.Result
	err error
}

// NewReader fails on anything but a JSON object.
func NewReader(doc gjson.Result) *Reader {
	r := &Reader{doc: doc}
	if !doc.IsObject() {
		r.err = kindError(doc, "object")
	}
	return r
}

func (r *Reader) Doc() gjson.Result {
	return r.doc
}

// Get returns the member key; a missing key yields a non-existent result.
func (r *Reader) Get(key string) gjson.Result {
	return r.doc.Get(escapeKey(key))
}

// Base reads an embedded base class from the same document.
func (r *Reader) Base(read func(gjson.Result) error) {
	if r.err != nil && !r.doc.IsObject() {
		return
	}
	r.err = multierr.Append(r.err, read(r.doc))
}

func (r *Reader) Err() error {
	return r.err
}

// ReadField reads one field of a generated class. Missing keys leave the
// field unchanged.
func ReadField[T any](r *Reader, key string, v *T, read func(gjson.Result, *T) error) {
	if r.err != nil && !r.doc.IsObject() {
		return
	}
	if err := read(r.Get(key), v); err != nil {
		r.err = multierr.Append(r.err, fmt.Errorf("%s: %w", key, err))
	}
}

// escapeKey escapes gjson/sjson path syntax so key is matched literally.
func escapeKey(key string) string {
	if !strings.ContainsAny(key, `.*?|#@\!=<>%`) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		if strings.ContainsRune(`.*?|#@\!=<>%`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
