package extractor

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/reflgen/internal/cursor"
	"github.com/cmmoran/reflgen/internal/model"
)

func extract(t *testing.T, fe cursor.Frontend) ([]*model.SchemaModule, *model.SymbolTable) {
	t.Helper()
	units, err := cursor.Load(context.Background(), fe, "testdata/zoo", "./...")
	require.NoError(t, err)
	for _, u := range units {
		t.Cleanup(u.Close)
	}
	require.Len(t, units, 2)

	e := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return e.Run(units)
}

func fieldNames(c *model.Class) []string {
	var out []string
	for _, f := range c.Fields {
		out = append(out, f.Name+":"+f.DisplayName)
	}
	return out
}

func TestRun(t *testing.T) {
	mods, symbols := extract(t, cursor.FrontendGoParser)
	require.Len(t, mods, 2)
	require.Equal(t, "vector.go", filepath.Base(mods[0].File))
	require.Equal(t, "zoo.go", filepath.Base(mods[1].File))

	zoo := mods[1]
	require.Equal(t, "zoo", zoo.PkgName)
	var names []string
	for _, c := range zoo.Classes {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"Pet", "Vector3", "Cage"}, names, "declaration order, unannotated classes dropped")

	pet := zoo.Classes[0]
	require.True(t, pet.IsWhitelist())
	require.Equal(t, []string{"Name:petName", "ID:id", "Owner:owner"}, fieldNames(pet))
	require.Equal(t, "7", pet.Field("ID").DefaultValue)
	require.Equal(t, model.KindPolymorphic, pet.Field("Owner").Type.Kind)
	require.Equal(t, "Keeper", pet.Field("Owner").Type.Elem.Name)
	require.Equal(t, []string{"zoo"}, pet.Namespace)
	require.Equal(t, zoo.PkgPath+".Pet", pet.QualifiedName)

	vec := zoo.Classes[1]
	require.Equal(t, []string{"X:x", "Y:y", "Z:z"}, fieldNames(vec))
	require.Len(t, vec.Methods, 1)
	require.Equal(t, "Len", vec.Methods[0].Name)
	require.Equal(t, []string{"float32"}, vec.Methods[0].Results)

	cage := zoo.Classes[2]
	require.Len(t, cage.Bases, 1)
	require.Equal(t, "Pet", cage.Bases[0].Name)
	require.Equal(t, []string{"Points:points", "Lookup:lookup", "Sibling:sibling", "m_Weight:weight"}, fieldNames(cage))
	require.True(t, cage.Field("Points").Type.IsSlice())
	require.Equal(t, model.KindUnsupported, cage.Field("Lookup").Type.Kind)
	require.Empty(t, cage.Methods, "fields-only class")

	// other/vector.go sorts first, so zoo's Vector3 is registered last.
	s, ok := symbols.Lookup("Vector3")
	require.True(t, ok)
	require.Equal(t, "zoo.go", filepath.Base(s.File))
	require.Equal(t, []string{"Cage", "Pet", "Vector3"}, symbols.Names())

	// both declarations survive in their own modules
	require.Equal(t, "Vector3", mods[0].Classes[0].Name)
	require.Equal(t, "W", mods[0].Classes[0].Fields[0].Name)
}

func TestFrontendsExtractTheSame(t *testing.T) {
	ast, _ := extract(t, cursor.FrontendGoParser)
	ts, _ := extract(t, cursor.FrontendTreeSitter)
	if diff := cmp.Diff(Summary(ast), Summary(ts)); diff != "" {
		t.Fatalf("summaries differ (-goparser +treesitter):\n%s", diff)
	}
	require.Equal(t, "other.Vector3(w float64)\n"+
		"zoo.Pet(petName string, id int, owner reflection.Ptr[Keeper])\n"+
		"zoo.Vector3(x float32, y float32, z float32)\n"+
		"zoo.Cage(points []Vector3, lookup map[string]int, sibling *Cage, weight float32)\n",
		Summary(ast))
}

func TestParseUnitReuse(t *testing.T) {
	units, err := cursor.Load(context.Background(), cursor.FrontendGoParser, "testdata/zoo", ".")
	require.NoError(t, err)
	require.Len(t, units, 1)

	e := New()
	mod := e.ParseUnit(units[0])
	require.Len(t, mod.Classes, 3)
	require.Equal(t, 3, e.Symbols().Len())
	require.Len(t, e.Modules(), 1)
}

func TestDuplicateNamesAcrossPackagesWarn(t *testing.T) {
	units, err := cursor.Load(context.Background(), cursor.FrontendGoParser, "testdata/zoo", "./...")
	require.NoError(t, err)
	for _, u := range units {
		t.Cleanup(u.Close)
	}

	var logs bytes.Buffer
	_, symbols := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))).Run(units)
	require.Equal(t, 3, symbols.Len())
	require.Contains(t, logs.String(), "class name declared in more than one package")
	require.Contains(t, logs.String(), "class=Vector3")
	require.Contains(t, logs.String(), "testdata/zoo/other.Vector3")
}
