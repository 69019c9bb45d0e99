package reflection

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/multierr"
)

// Base is one embedded base-class value of an instance.
type Base struct {
	Name  string
	Value any // pointer to the embedded value
}

// ClassFuncs is the registry entry of one reflected class. Instances are
// always pointers to the class type.
type ClassFuncs struct {
	Name              string
	New               func() any
	Bases             func(inst any) []Base
	ConstructFromJSON func(doc gjson.Result) (any, error)
	WriteByName       func(inst any) (json.RawMessage, error)
	Destroy           func(inst any)
}

// FieldFuncs is the registry entry of one reflected field.
type FieldFuncs struct {
	Owner        string
	Name         string // Go identifier
	DisplayName  string
	TypeName     string
	IsArray      bool
	ElementName  string
	DefaultValue string
	// Get returns a pointer to the field, nil when inst is not an owner.
	Get func(inst any) any
	// Set accepts a value or a pointer to one and reports whether it was
	// stored.
	Set func(inst, v any) bool
}

// ArrayFuncs is the registry entry of one slice type, keyed by TypeName
// (e.g. "[]Vector3").
type ArrayFuncs struct {
	TypeName        string
	ElementTypeName string
	Get             func(arr any, i int) any
	Set             func(arr any, i int, v any) bool
	Size            func(arr any) int
}

type MethodFuncs struct {
	Owner  string
	Name   string
	Invoke func(inst any) []any
}

type phase int

const (
	phaseOpen phase = iota
	phaseSealed
	phaseClosed
)

// Registry maps type names to accessor bundles. Registration happens during
// package initialization; Seal ends that phase and UnregisterAll tears the
// registry down at shutdown.
type Registry struct {
	mu      sync.RWMutex
	phase   phase
	classes map[string]*ClassFuncs
	fields  map[string][]*FieldFuncs
	arrays  map[string]*ArrayFuncs
	methods map[string][]*MethodFuncs
	logger  *slog.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]*ClassFuncs),
		fields:  make(map[string][]*FieldFuncs),
		arrays:  make(map[string]*ArrayFuncs),
		methods: make(map[string][]*MethodFuncs),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default is the process-wide registry filled by generated init functions.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// SetLogger replaces the logger used for registration diagnostics. A nil
// logger falls back to slog.Default.
func (r *Registry) SetLogger(l *slog.Logger) {
	r.mu.Lock()
	r.logger = l
	r.mu.Unlock()
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// writable must be called with mu held.
func (r *Registry) writable() error {
	switch r.phase {
	case phaseSealed:
		return ErrRegistrySealed
	case phaseClosed:
		return ErrRegistryClosed
	}
	return nil
}

// RegisterClass adds a class entry. The first registrar of a name wins.
func (r *Registry) RegisterClass(c ClassFuncs) error {
	if c.Name == "" || c.New == nil {
		return fmt.Errorf("class %q: %w", c.Name, ErrInvalidEntry)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writable(); err != nil {
		return fmt.Errorf("register class %s: %w", c.Name, err)
	}
	if _, ok := r.classes[c.Name]; ok {
		r.log().Warn("class already registered", "class", c.Name)
		return fmt.Errorf("class %s: %w", c.Name, ErrDuplicate)
	}
	r.classes[c.Name] = &c
	return nil
}

// RegisterField appends a field entry to its owner. A second entry with the
// same owner and identifier is dropped.
func (r *Registry) RegisterField(f FieldFuncs) error {
	if f.Owner == "" || f.Name == "" {
		return fmt.Errorf("field %s.%s: %w", f.Owner, f.Name, ErrInvalidEntry)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writable(); err != nil {
		return fmt.Errorf("register field %s.%s: %w", f.Owner, f.Name, err)
	}
	for _, existing := range r.fields[f.Owner] {
		if existing.Name == f.Name {
			return fmt.Errorf("field %s.%s: %w", f.Owner, f.Name, ErrDuplicate)
		}
	}
	r.fields[f.Owner] = append(r.fields[f.Owner], &f)
	return nil
}

// RegisterArray adds a slice accessor. Several files may register the same
// container type; only the first is kept.
func (r *Registry) RegisterArray(a ArrayFuncs) error {
	if a.TypeName == "" {
		return fmt.Errorf("array: %w", ErrInvalidEntry)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writable(); err != nil {
		return fmt.Errorf("register array %s: %w", a.TypeName, err)
	}
	if _, ok := r.arrays[a.TypeName]; ok {
		r.log().Debug("array already registered", "type", a.TypeName)
		return fmt.Errorf("array %s: %w", a.TypeName, ErrDuplicate)
	}
	r.arrays[a.TypeName] = &a
	return nil
}

func (r *Registry) RegisterMethod(m MethodFuncs) error {
	if m.Owner == "" || m.Name == "" || m.Invoke == nil {
		return fmt.Errorf("method %s.%s: %w", m.Owner, m.Name, ErrInvalidEntry)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writable(); err != nil {
		return fmt.Errorf("register method %s.%s: %w", m.Owner, m.Name, err)
	}
	for _, existing := range r.methods[m.Owner] {
		if existing.Name == m.Name {
			return fmt.Errorf("method %s.%s: %w", m.Owner, m.Name, ErrDuplicate)
		}
	}
	r.methods[m.Owner] = append(r.methods[m.Owner], &m)
	return nil
}

// Seal ends the registration phase. It is a no-op once sealed or closed.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == phaseOpen {
		r.phase = phaseSealed
	}
}

func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase != phaseOpen
}

// UnregisterAll clears every entry and closes the registry for good.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.classes)
	clear(r.fields)
	clear(r.arrays)
	clear(r.methods)
	r.phase = phaseClosed
}

// Verify reports every name in names that has no class entry.
func (r *Registry) Verify(names ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var err error
	for _, n := range names {
		if _, ok := r.classes[n]; !ok {
			err = multierr.Append(err, fmt.Errorf("%s: %w", n, ErrNotFound))
		}
	}
	return err
}

func (r *Registry) Class(name string) (*ClassFuncs, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

func (r *Registry) Array(typeName string) (*ArrayFuncs, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.arrays[typeName]
	return a, ok
}

// Fields returns a copy of the field list of owner in registration order.
func (r *Registry) Fields(owner string) []*FieldFuncs {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*FieldFuncs(nil), r.fields[owner]...)
}

func (r *Registry) Methods(owner string) []*MethodFuncs {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*MethodFuncs(nil), r.methods[owner]...)
}

// ClassNames returns every registered class name, sorted.
func (r *Registry) ClassNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.classes))
	for n := range r.classes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Stats counts the entries in each map.
type Stats struct {
	Classes int
	Fields  int
	Arrays  int
	Methods int
}

func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Stats{Classes: len(r.classes), Arrays: len(r.arrays)}
	for _, fs := range r.fields {
		s.Fields += len(fs)
	}
	for _, ms := range r.methods {
		s.Methods += len(ms)
	}
	return s
}

// NewFromNameAndJSON constructs the class called name from doc. Unknown names
// and decode failures yield an invalid Instance.
func (r *Registry) NewFromNameAndJSON(name string, doc gjson.Result) Instance {
	inst, err := r.Construct(name, doc)
	if err != nil {
		r.log().Debug("construct from json failed", "class", name, "error", err)
		return Instance{}
	}
	return inst
}

// Construct is NewFromNameAndJSON with the failure reported. An unknown name
// fails with ErrNotFound; a decode failure is returned as is.
func (r *Registry) Construct(name string, doc gjson.Result) (Instance, error) {
	c, ok := r.Class(name)
	if !ok || c.ConstructFromJSON == nil {
		return Instance{}, fmt.Errorf("construct %s: %w", name, ErrNotFound)
	}
	v, err := c.ConstructFromJSON(doc)
	if err != nil {
		return Instance{}, fmt.Errorf("construct %s: %w", name, err)
	}
	return Instance{Meta: r.Meta(name), Value: v}, nil
}

// WriteByName serializes inst using the entry registered under name.
func (r *Registry) WriteByName(name string, inst any) (json.RawMessage, error) {
	c, ok := r.Class(name)
	if !ok || c.WriteByName == nil {
		return nil, fmt.Errorf("write %s: %w", name, ErrNotFound)
	}
	return c.WriteByName(inst)
}

// Destroy runs the registered destroy hook for inst. It reports false when
// name is not registered.
func (r *Registry) Destroy(name string, inst any) bool {
	c, ok := r.Class(name)
	if !ok {
		return false
	}
	if c.Destroy != nil && inst != nil {
		c.Destroy(inst)
	}
	return true
}

func RegisterClass(c ClassFuncs) error   { return Default().RegisterClass(c) }
func RegisterField(f FieldFuncs) error   { return Default().RegisterField(f) }
func RegisterArray(a ArrayFuncs) error   { return Default().RegisterArray(a) }
func RegisterMethod(m MethodFuncs) error { return Default().RegisterMethod(m) }
func Seal()                              { Default().Seal() }
func UnregisterAll()                     { Default().UnregisterAll() }
func Verify(names ...string) error       { return Default().Verify(names...) }

func NewFromNameAndJSON(name string, doc gjson.Result) Instance {
	return Default().NewFromNameAndJSON(name, doc)
}

func Construct(name string, doc gjson.Result) (Instance, error) {
	return Default().Construct(name, doc)
}

func WriteByName(name string, inst any) (json.RawMessage, error) {
	return Default().WriteByName(name, inst)
}
