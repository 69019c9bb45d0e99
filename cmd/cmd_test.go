package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/reflgen/pkg/manifest"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"trace":   LevelTrace,
		"TRACE":   LevelTrace,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"debug+1": slog.LevelDebug + 1,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := parseLevel("loud")
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	viper.Set("frontend", "goparser")
	viper.Set("exclude_types", []string{"Scratch"})

	var out bytes.Buffer
	c := NewConfigCommand()
	c.SetOut(&out)
	c.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, c.Execute())
	require.Contains(t, out.String(), "frontend: goparser")
	require.Contains(t, out.String(), "- Scratch")

	out.Reset()
	c.SetArgs([]string{"--format", "xml"})
	require.Error(t, c.Execute())
}

func TestManifestCommands(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	viper.Set("manifest_path", path)

	m := &manifest.Manifest{}
	m.AddSnapshot(manifest.Snapshot{Name: "scene", Version: "v1", Classes: []string{"Vector3"}})
	m.AddSnapshot(manifest.Snapshot{Name: "scene", Version: "v2", Classes: []string{"Vector3", "Path"}})
	require.NoError(t, m.Save(path))

	var out bytes.Buffer
	c := NewManifestCommand()
	c.SetOut(&out)
	c.SetArgs([]string{"list"})
	require.NoError(t, c.Execute())
	require.Contains(t, out.String(), "v2 (current)")
	require.Contains(t, out.String(), "v1 (previous)")

	out.Reset()
	c.SetArgs([]string{"diff"})
	require.NoError(t, c.Execute())
	require.Contains(t, out.String(), "Path")

	require.NoError(t, os.Remove(path))
	out.Reset()
	c.SetArgs([]string{"diff"})
	require.Error(t, c.Execute(), "an empty manifest has nothing to compare")
}
