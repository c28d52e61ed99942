package templates

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrosnid/snid/grid"
)

func writeTemplate(t *testing.T, dir, stem, typ string, age float64, n int) {
	t.Helper()

	meta := templateMeta{
		Name: stem, Type: typ, Subtype: "norm", AgeDays: age, Quality: 1,
		LeftEdge: 10, RightEdge: n - 10,
	}
	metaRaw, err := json.Marshal(meta)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, stem+".meta.json"), metaRaw, 0o644))

	flux := make([]float32, n)
	for i := range flux {
		flux[i] = float32(i % 7)
	}
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(flux))
	require.NoError(t, os.WriteFile(filepath.Join(dir, stem+".flat.gob"), buf.Bytes(), 0o644))
}

func writeIndex(t *testing.T, dir string, types map[string][]string) {
	t.Helper()
	raw, err := json.Marshal(indexFile{Types: types})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.json"), raw, 0o644))
}

func TestLoaderMergesUserOverride(t *testing.T) {
	g := grid.New(64, 3500, 2e-3)
	base := t.TempDir()
	user := t.TempDir()

	writeTemplate(t, base, "sn1994d", "Ia", 0, g.N)
	writeTemplate(t, base, "sn1993j", "IIb", 5, g.N)
	writeIndex(t, base, map[string][]string{"Ia": {"sn1994d"}, "IIb": {"sn1993j"}})

	writeTemplate(t, user, "sn_custom", "Ia", 2, g.N)
	writeIndex(t, user, map[string][]string{"Ia": {"sn_custom"}})

	lib, err := Loader{}.Load(base, user, g)
	require.NoError(t, err)

	var iaNames []string
	for tmpl := range lib.Query(Filter{TypeFilter: []string{"Ia"}}) {
		iaNames = append(iaNames, tmpl.Name)
	}
	assert.Equal(t, []string{"sn_custom"}, iaNames)

	var iibCount int
	for range lib.Query(Filter{TypeFilter: []string{"IIb"}}) {
		iibCount++
	}
	assert.Equal(t, 1, iibCount)
}

func TestLoaderPrecomputesFFTAndNorm(t *testing.T) {
	g := grid.New(64, 3500, 2e-3)
	base := t.TempDir()
	writeTemplate(t, base, "sn1994d", "Ia", 0, g.N)
	writeIndex(t, base, map[string][]string{"Ia": {"sn1994d"}})

	lib, err := Loader{}.Load(base, "", g)
	require.NoError(t, err)

	for tmpl := range lib.Query(Filter{}) {
		assert.NotEmpty(t, tmpl.FFT)
		assert.Greater(t, tmpl.Norm, 0.0)
	}
}

func TestFilterAgeRange(t *testing.T) {
	g := grid.New(64, 3500, 2e-3)
	base := t.TempDir()
	writeTemplate(t, base, "young", "Ia", 1, g.N)
	writeTemplate(t, base, "old", "Ia", 30, g.N)
	writeIndex(t, base, map[string][]string{"Ia": {"young", "old"}})

	lib, err := Loader{}.Load(base, "", g)
	require.NoError(t, err)

	ageMax := 10.0
	var names []string
	for tmpl := range lib.Query(Filter{AgeMax: &ageMax}) {
		names = append(names, tmpl.Name)
	}
	assert.Equal(t, []string{"young"}, names)
}
