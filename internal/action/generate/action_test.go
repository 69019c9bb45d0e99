package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/reflgen/pkg/action/snapshot"
	"github.com/cmmoran/reflgen/pkg/manifest"
	"github.com/cmmoran/reflgen/pkg/options"
)

func TestRunDryRunOnScene(t *testing.T) {
	dir, err := filepath.Abs("../../fixtures/scene")
	require.NoError(t, err)

	res, err := Run(context.Background(), options.New(
		options.WithInDir(dir),
		options.WithPatterns("."),
		options.WithFrontend("goparser"),
		options.WithIndexDir("sceneindex"),
		options.WithDryRun(),
	))
	require.NoError(t, err)

	want := []string{"ComponentBase", "Material", "MeshComponent", "RigidBody", "Vector3", "Quaternion", "Transform", "Path", "GameObject"}
	require.Equal(t, want, res.Classes)
	require.Len(t, res.Files, 8)
	require.Equal(t, filepath.Join(dir, "sceneindex", "reflection_index.gen.go"), res.IndexFile)

	index := string(res.Sources[res.IndexFile])
	assert.Contains(t, index, "package sceneindex")
	assert.Contains(t, index, `_ "github.com/cmmoran/reflgen/internal/fixtures/scene"`)
	assert.Contains(t, index, `"ComponentBase", "Material", "MeshComponent", "RigidBody", "Vector3"`)

	ser := string(res.Sources[filepath.Join(dir, "sceneindex", "serializer_index.gen.go")])
	assert.Contains(t, ser, "_ serializer.Serializable = (*scene.GameObject)(nil)")

	obj := string(res.Sources[filepath.Join(dir, "object_serializer.gen.go")])
	assert.Contains(t, obj, `serializer.Field(obj, "created", &o.Created, serializer.Write[time.Time])`)

	_, err = os.Stat(filepath.Join(dir, ".reflgen"))
	require.ErrorIs(t, err, os.ErrNotExist, "a dry run records nothing")
}

const shapes = `package shapes

//reflect:fields
type Point struct {
	X, Y float64
}

//reflect:fields
type Scratch struct {
	Note string
}
`

const moreShapes = `package shapes

//reflect:all
type Polygon struct {
	Points []Point
}

func (p *Polygon) Sides() int { return len(p.Points) }
`

func TestRunWritesFilesAndManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/shapes\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "shapes.go"), []byte(shapes), 0o644))

	run := func(version string) *Result {
		t.Helper()
		res, err := Run(context.Background(), options.New(
			options.WithInDir(root),
			options.WithFrontend("goparser"),
			options.WithIndexDir("internal/shapesindex"),
			options.WithVersion(version),
			options.WithExcludeTypes("scratch"),
		))
		require.NoError(t, err)
		return res
	}

	res := run("v1")
	require.Equal(t, []string{"Point"}, res.Classes)
	for _, f := range res.Files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		require.Equal(t, string(res.Sources[f]), string(src))
		require.True(t, strings.HasPrefix(string(src), "// Code generated by reflgen. DO NOT EDIT."))
	}
	refl, err := os.ReadFile(filepath.Join(root, "shapes_reflection.gen.go"))
	require.NoError(t, err)
	require.NotContains(t, string(refl), "Scratch")
	index, err := os.ReadFile(filepath.Join(root, "internal", "shapesindex", "reflection_index.gen.go"))
	require.NoError(t, err)
	require.Contains(t, string(index), `_ "example.com/shapes"`)

	require.NoError(t, os.WriteFile(filepath.Join(root, "polygon.go"), []byte(moreShapes), 0o644))
	res = run("v2")
	require.Equal(t, []string{"Polygon", "Point"}, res.Classes, "files are visited in path order")

	manifestPath := filepath.Join(root, options.DefaultManifestPath)
	m, err := snapshot.List(manifestPath)
	require.NoError(t, err)
	require.Equal(t, "v2", m.CurrentVersion)
	require.Equal(t, "v1", m.PreviousVersion)
	require.Len(t, m.Snapshots, 2)
	s, ok := m.Snapshot("v2")
	require.True(t, ok)
	require.Contains(t, s.Files, "polygon_serializer.gen.go")
	require.Contains(t, s.Files, "internal/shapesindex/serializer_index.gen.go")
	require.Equal(t, filepath.Base(root), s.Name)

	d, err := snapshot.DiffCurrentWithPrevious(manifestPath)
	require.NoError(t, err)
	require.Contains(t, d, "Polygon")

	_, err = snapshot.Record(manifestPath, manifest.Snapshot{Name: s.Name, Version: "v2"})
	require.NoError(t, err)
	d, err = snapshot.DiffCurrentWithPrevious(manifestPath)
	require.NoError(t, err)
	require.Contains(t, d, "Point")
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), options.New(options.WithFrontend("clang")))
	require.ErrorContains(t, err, "invalid options")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, options.New(options.WithInDir("../../fixtures/scene"), options.WithFrontend("goparser"), options.WithDryRun()))
	require.ErrorIs(t, err, context.Canceled)
}
