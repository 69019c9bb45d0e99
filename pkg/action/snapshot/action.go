package snapshot

import (
	"fmt"

	"github.com/cmmoran/reflgen/pkg/manifest"
)

// Record adds s to the manifest at manifestPath and saves it.
func Record(manifestPath string, s manifest.Snapshot) (*manifest.Manifest, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	m.AddSnapshot(s)

	if err := m.Save(manifestPath); err != nil {
		return nil, err
	}

	return m, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest and returns a textual diff of
// the classes and files recorded for the previous and current versions.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	return m.Diff(m.PreviousVersion, m.CurrentVersion)
}
