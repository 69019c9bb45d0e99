package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

var ErrNoSnapshot = errors.New("snapshot not found")

// Snapshot records one generation run.
type Snapshot struct {
	Name    string   `yaml:"name" json:"name"`
	Version string   `yaml:"version" json:"version"`
	File    string   `yaml:"file,omitempty" json:"file,omitempty"` // reflection index file
	Files   []string `yaml:"files,omitempty" json:"files,omitempty"`
	Classes []string `yaml:"classes,omitempty" json:"classes,omitempty"`
}

// Manifest tracks the generated snapshots of a module.
type Manifest struct {
	CurrentVersion  string     `yaml:"current_version" json:"current_version"`
	PreviousVersion string     `yaml:"previous_version" json:"previous_version"`
	Snapshots       []Snapshot `yaml:"snapshots" json:"snapshots"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddSnapshot records a snapshot, updating version pointers and de-duplicating
// existing entries that share the same name and version. Re-recording the
// current version leaves the previous pointer alone.
func (m *Manifest) AddSnapshot(s Snapshot) {
	if m.CurrentVersion != "" && m.CurrentVersion != s.Version {
		m.PreviousVersion = m.CurrentVersion
	}
	m.CurrentVersion = s.Version

	s.Files = sortedCopy(s.Files)
	for i := range m.Snapshots {
		if m.Snapshots[i].Name == s.Name && m.Snapshots[i].Version == s.Version {
			m.Snapshots[i] = s
			return
		}
	}

	m.Snapshots = append(m.Snapshots, s)
}

// Snapshot returns the last entry recorded for version.
func (m *Manifest) Snapshot(version string) (*Snapshot, bool) {
	for i := len(m.Snapshots) - 1; i >= 0; i-- {
		if m.Snapshots[i].Version == version {
			return &m.Snapshots[i], true
		}
	}
	return nil, false
}

// SnapshotFile returns the path associated with the provided version, if present.
func (m *Manifest) SnapshotFile(version string) string {
	if s, ok := m.Snapshot(version); ok {
		return s.File
	}
	return ""
}

// Diff compares the class and file lists of two recorded versions.
// An empty result means nothing changed.
func (m *Manifest) Diff(previous, current string) (string, error) {
	prev, ok := m.Snapshot(previous)
	if !ok {
		return "", fmt.Errorf("version %q: %w", previous, ErrNoSnapshot)
	}
	cur, ok := m.Snapshot(current)
	if !ok {
		return "", fmt.Errorf("version %q: %w", current, ErrNoSnapshot)
	}
	type contents struct {
		Classes []string
		Files   []string
	}
	return cmp.Diff(
		contents{Classes: prev.Classes, Files: prev.Files},
		contents{Classes: cur.Classes, Files: cur.Files},
	), nil
}

func sortedCopy(in []string) []string {
	if in == nil {
		return nil
	}
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
