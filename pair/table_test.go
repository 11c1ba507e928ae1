package pair

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleTable = `# DATE: 2021-03-02  UNITS: metal
# pair table for testing

LJ
N 4 R 1.0 2.5

1 1.0 4.0 -12.0
2 1.5 1.0  -3.0
# interior comment
3 2.0 0.5  -1.0

4 2.5 0.0   0.0
`

func TestReadTable(t *testing.T) {
	tab, err := ReadTable(strings.NewReader(exampleTable))
	require.NoError(t, err)

	assert.Equal(t, []float64{ 1.0, 1.5, 2.0, 2.5 }, tab.Distances)
	assert.Equal(t, []float64{ 4.0, 1.0, 0.5, 0.0 }, tab.Energies)
	assert.Equal(t, []float64{ -12.0, -3.0, -1.0, 0.0 }, tab.Forces)
	assert.Equal(t, 1.0, tab.Min())
	assert.Equal(t, 2.5, tab.Max())

	table := []struct {
		r, e, f float64
	}{
		{ 1.0, 4.0, -12.0 },
		{ 1.25, 2.5, -7.5 },
		{ 1.75, 0.75, -2.0 },
		{ 2.5, 0, 0 },
		{ 2.25, 0.25, -0.5 },
	}
	for i, test := range table {
		assert.InDelta(t, test.e, tab.Energy(test.r), 1e-12, "%d) energy", i)
		assert.InDelta(t, test.f, tab.Force(test.r), 1e-12, "%d) force", i)
	}
}

func TestTableOutOfRange(t *testing.T) {
	tab, err := NewTable(
		[]float64{ 0.5, 1, 1.5 }, []float64{ 7, 7, 7 }, []float64{ 3, 3, 3 },
	)
	require.NoError(t, err)

	for _, r := range []float64{ 0, 0.4999, -1, 1.5001, 10, 1e300 } {
		assert.Equal(t, 0.0, tab.Energy(r), "r = %g", r)
		assert.Equal(t, 0.0, tab.Force(r), "r = %g", r)
	}
	for _, r := range []float64{ 0.5, 0.75, 1.5 } {
		assert.InDelta(t, 7.0, tab.Energy(r), 1e-12, "r = %g", r)
		assert.InDelta(t, 3.0, tab.Force(r), 1e-12, "r = %g", r)
	}
}

func TestReadTableErrors(t *testing.T) {
	table := []struct {
		name, text string
	}{
		{ "no marker", "# header\n1 1.0 1.0 1.0\n2 2.0 1.0 1.0\n" },
		{ "empty", "" },
		{ "short row", "N 2\n1 1.0 1.0 1.0\n2 2.0 1.0\n" },
		{ "bad number", "N 2\n1 1.0 1.0 1.0\n2 2.0 x 1.0\n" },
		{ "decreasing", "N 2\n1 2.0 1.0 1.0\n2 1.0 1.0 1.0\n" },
		{ "repeated", "N 2\n1 1.0 1.0 1.0\n2 1.0 1.0 1.0\n" },
		{ "one row", "N 1\n1 1.0 1.0 1.0\n" },
		{ "nan", "N 2\n1 nan 1.0 1.0\n2 1.0 1.0 1.0\n" },
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(test.text))
			assert.Error(t, err)
		})
	}
}

func TestReadTableMarkerIsToken(t *testing.T) {
	// "NONE" starts with N but is not the marker.
	text := "NONE of this is data\nN 2\n1 1.0 2.0 3.0\n2 2.0 4.0 6.0\n"
	tab, err := ReadTable(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, []float64{ 1, 2 }, tab.Distances)
}

func TestReadTableFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "pair.table")
	require.NoError(t, os.WriteFile(fname, []byte(exampleTable), 0644))

	tab, err := ReadTableFile(fname)
	require.NoError(t, err)
	assert.Len(t, tab.Distances, 4)

	_, err = ReadTableFile(filepath.Join(t.TempDir(), "missing.table"))
	assert.Error(t, err)
}
