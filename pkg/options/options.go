package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultReflectionSuffix = "_reflection.gen.go"
	DefaultSerializerSuffix = "_serializer.gen.go"
	DefaultManifestPath     = ".reflgen/manifest.yaml"
)

var ErrUnknownFormat = errors.New("unknown format")

// Options control loading, generation and snapshot recording.
//
// InDir            – module directory patterns are resolved against
// Patterns         – package patterns, "./..." style
// Frontend         – packages, goparser or treesitter
// IndexDir         – directory of the generated index package; empty skips it
// IndexPackage     – index package name, derived from IndexDir when empty
// ManifestPath     – snapshot manifest; empty disables recording
// Version          – version recorded with the snapshot
// ReflectionSuffix – per-file suffix of reflection output
// SerializerSuffix – per-file suffix of serializer output
// ExcludeTypes     – class names to skip (case-insensitive)
// DryRun           – render without writing files or the manifest
type Options struct {
	InDir            string   `json:"in_dir,omitempty" yaml:"in_dir,omitempty" toml:"in_dir,omitempty" mapstructure:"in_dir,omitempty" validate:"required"`
	Patterns         []string `json:"patterns,omitempty" yaml:"patterns,omitempty" toml:"patterns,omitempty" mapstructure:"patterns,omitempty" validate:"min=1,dive,required"`
	Frontend         string   `json:"frontend,omitempty" yaml:"frontend,omitempty" toml:"frontend,omitempty" mapstructure:"frontend,omitempty" validate:"oneof=packages goparser treesitter"`
	IndexDir         string   `json:"index_dir,omitempty" yaml:"index_dir,omitempty" toml:"index_dir,omitempty" mapstructure:"index_dir,omitempty"`
	IndexPackage     string   `json:"index_package,omitempty" yaml:"index_package,omitempty" toml:"index_package,omitempty" mapstructure:"index_package,omitempty" validate:"omitempty,excludesall=/.- "`
	ManifestPath     string   `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty" toml:"manifest_path,omitempty" mapstructure:"manifest_path,omitempty"`
	Version          string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty" mapstructure:"version,omitempty"`
	ReflectionSuffix string   `json:"reflection_suffix,omitempty" yaml:"reflection_suffix,omitempty" toml:"reflection_suffix,omitempty" mapstructure:"reflection_suffix,omitempty" validate:"required,endswith=.go"`
	SerializerSuffix string   `json:"serializer_suffix,omitempty" yaml:"serializer_suffix,omitempty" toml:"serializer_suffix,omitempty" mapstructure:"serializer_suffix,omitempty" validate:"required,endswith=.go,nefield=ReflectionSuffix"`
	ExcludeTypes     []string `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	DryRun           bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" toml:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InDir:            ".",
		Patterns:         []string{"./..."},
		Frontend:         "packages",
		ManifestPath:     DefaultManifestPath,
		ReflectionSuffix: DefaultReflectionSuffix,
		SerializerSuffix: DefaultSerializerSuffix,
	}
}

// New applies opts over the defaults.
func New(opts ...Option) *Options {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Normalize fills empty fields with defaults and makes directories absolute.
func (o *Options) Normalize() {
	if o.InDir == "" {
		o.InDir = "."
	}
	o.InDir, _ = filepath.Abs(o.InDir)
	if len(o.Patterns) == 0 {
		o.Patterns = []string{"./..."}
	}
	if o.Frontend == "" {
		o.Frontend = "packages"
	}
	o.Frontend = strings.ToLower(o.Frontend)
	if o.IndexDir != "" && !filepath.IsAbs(o.IndexDir) {
		o.IndexDir = filepath.Join(o.InDir, o.IndexDir)
	}
	if o.ManifestPath != "" && !filepath.IsAbs(o.ManifestPath) {
		o.ManifestPath = filepath.Join(o.InDir, o.ManifestPath)
	}
	if o.ReflectionSuffix == "" {
		o.ReflectionSuffix = DefaultReflectionSuffix
	}
	if o.SerializerSuffix == "" {
		o.SerializerSuffix = DefaultSerializerSuffix
	}
	for i, n := range o.ExcludeTypes {
		o.ExcludeTypes[i] = strings.TrimSpace(n)
	}
}

func (o *Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// Excluded reports whether the class name is listed in ExcludeTypes.
func (o *Options) Excluded(name string) bool {
	for _, n := range o.ExcludeTypes {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Encode renders the options as yaml, toml or json.
func (o *Options) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(o)
	case "toml":
		return toml.Marshal(o)
	case "json":
		return json.MarshalIndent(o, "", "  ")
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInDir(d string) Option            { return func(o *Options) { o.InDir = d } }
func WithPatterns(p ...string) Option      { return func(o *Options) { o.Patterns = p } }
func WithFrontend(f string) Option         { return func(o *Options) { o.Frontend = f } }
func WithIndexDir(d string) Option         { return func(o *Options) { o.IndexDir = d } }
func WithIndexPackage(n string) Option     { return func(o *Options) { o.IndexPackage = n } }
func WithManifestPath(p string) Option     { return func(o *Options) { o.ManifestPath = p } }
func WithVersion(v string) Option          { return func(o *Options) { o.Version = v } }
func WithReflectionSuffix(s string) Option { return func(o *Options) { o.ReflectionSuffix = s } }
func WithSerializerSuffix(s string) Option { return func(o *Options) { o.SerializerSuffix = s } }
func WithDryRun() Option                   { return func(o *Options) { o.DryRun = true } }
func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}
