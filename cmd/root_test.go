package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	// Set DEBUG_TESTS=1 to see logs: DEBUG_TESTS=1 go test ./cmd/... -v
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

const testTable = `header line
N 3
1 0.5 2.0 4.0
2 1.0 1.0 2.0
3 1.5 0.0 0.0
`

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(text), 0644))
	return fname
}

// run executes mcase with args and decodes its YAML output into out.
func run(t *testing.T, out interface{}, args ...string) error {
	t.Helper()
	root := NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	if err := root.Execute(); err != nil { return err }
	if out != nil {
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), out))
	}
	return nil
}

func TestTableCommand(t *testing.T) {
	fname := writeFile(t, "pair.table", testTable)

	var report tableReport
	require.NoError(t, run(t, &report, "table", fname, "--at", "0.25,0.75,1.5,2"))

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 0.5, report.Min)
	assert.Equal(t, 1.5, report.Max)
	require.Len(t, report.Points, 4)
	assert.Equal(t, tablePoint{ R: 0.25 }, report.Points[0])
	assert.InDelta(t, 1.5, report.Points[1].Energy, 1e-12)
	assert.InDelta(t, 3.0, report.Points[1].Force, 1e-12)
	assert.Equal(t, tablePoint{ R: 2 }, report.Points[3])

	// The table can also come from --table.
	require.NoError(t, run(t, &report, "table", "--table", fname))

	assert.Error(t, run(t, nil, "table"))
	assert.Error(t, run(t, nil, "table", writeFile(t, "bad.table", "1 2 3 4\n")))
}

func TestPairCommand(t *testing.T) {
	tab := writeFile(t, "pair.table", testTable)
	positions := writeFile(t, "positions.txt", "0 0 0\n1 0 0\n")

	var report struct {
		Particles int          `yaml:"particles"`
		Periodic  bool         `yaml:"periodic"`
		Energy    float64      `yaml:"energy"`
		Forces    [][3]float64 `yaml:"forces"`
	}
	require.NoError(t, run(t, &report,
		"pair", "--table", tab, "--positions", positions,
	))
	assert.Equal(t, 2, report.Particles)
	assert.False(t, report.Periodic)
	assert.InDelta(t, 1.0, report.Energy, 1e-12)
	assert.Equal(t, [][3]float64{ { -2, 0, 0 }, { 2, 0, 0 } }, report.Forces)

	// In a cell of width 1.5 the minimum image separation is 0.5, through
	// the boundary.
	require.NoError(t, run(t, &report,
		"pair", "--table", tab, "--positions", positions, "--cell", "1.5",
	))
	assert.True(t, report.Periodic)
	assert.InDelta(t, 2.0, report.Energy, 1e-12)

	assert.Error(t, run(t, nil, "pair", "--table", tab))
	assert.Error(t, run(t, nil, "pair", "--positions", positions))
}

func TestSpringCommand(t *testing.T) {
	path := writeFile(t, "path.txt", "0.5 0 0\n9.5 0 0\n")

	var report struct {
		Slices       int            `yaml:"slices"`
		Particles    int            `yaml:"particles"`
		MinimumImage bool           `yaml:"minimum_image"`
		Energy       float64        `yaml:"energy"`
		Forces       [][][3]float64 `yaml:"forces"`
	}
	require.NoError(t, run(t, &report,
		"spring", "--positions", path, "--slices", "2", "--beta", "1",
		"--tau", "1",
	))
	assert.Equal(t, 2, report.Slices)
	assert.Equal(t, 1, report.Particles)
	assert.False(t, report.MinimumImage)
	assert.InDelta(t, 81.0, report.Energy, 1e-12)

	require.NoError(t, run(t, &report,
		"spring", "--positions", path, "--slices", "2", "--beta", "1",
		"--tau", "1", "--cell", "10", "--minimum-image",
	))
	assert.True(t, report.MinimumImage)
	assert.InDelta(t, 1.0, report.Energy, 1e-12)
	assert.InDelta(t, -2.0, report.Forces[0][0][0], 1e-12)

	assert.Error(t, run(t, nil,
		"spring", "--positions", path, "--minimum-image",
	))
	assert.Error(t, run(t, nil, "spring", "--positions", path, "--slices", "3"))
}

func TestCellCommand(t *testing.T) {
	params := writeFile(t, "input.txt", `energy1 0
energy2 0
volume1 1
volume2 1.1
particles 10
pressure 0
beta 1
`)

	var report cellReport
	require.NoError(t, run(t, &report, "cell", "--params", params))
	assert.InDelta(t, 2.5937424601, report.Ratio, 1e-9)

	// Missing ensemble parameters come from the flags.
	params = writeFile(t, "input.txt", "energy1 0\nenergy2 0\nvolume1 1\nvolume2 2\n")
	require.NoError(t, run(t, &report,
		"cell", "--params", params, "--particles", "3",
	))
	assert.InDelta(t, 8.0, report.Ratio, 1e-12)

	params = writeFile(t, "input.txt", "energy1 0\nvolume1 1\nvolume2 2\n")
	assert.Error(t, run(t, nil, "cell", "--params", params))
	assert.Error(t, run(t, nil, "cell"))
}

func TestConfigFile(t *testing.T) {
	tab := writeFile(t, "pair.table", testTable)
	con := writeFile(t, "run.cfg", "[Sampler]\nBeta = 2\nTableFile = "+tab+"\n")

	var report tableReport
	require.NoError(t, run(t, &report, "table", "--config", con))
	assert.Equal(t, tab, report.File)

	bad := writeFile(t, "bad.cfg", "[Sampler]\nBeta = -2\n")
	assert.Error(t, run(t, nil, "table", "--config", bad))
	assert.Error(t, run(t, nil, "table", "--table", tab, "--beta", "0"))
	assert.Error(t, run(t, nil, "table", "--table", tab, "--log", "loud"))
}

func TestExampleConfigCommand(t *testing.T) {
	root := NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{ "example-config" })
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "[Sampler]")
}
