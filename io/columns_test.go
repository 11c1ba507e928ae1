package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const examplePositions = `# x y z
0 0 0
1 0 0
0 2 0
0 0 3
`

func writePositions(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "positions.txt")
	require.NoError(t, os.WriteFile(fname, []byte(examplePositions), 0644))
	return fname
}

func TestReadPositions(t *testing.T) {
	xs, err := ReadPositions(writePositions(t))
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{
		{}, { X: 1 }, { Y: 2 }, { Z: 3 },
	}, xs)
}

func TestReadPath(t *testing.T) {
	fname := writePositions(t)

	path, err := ReadPath(fname, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]r3.Vec{
		{ {}, { X: 1 } }, { { Y: 2 }, { Z: 3 } },
	}, path)

	_, err = ReadPath(fname, 3)
	assert.Error(t, err)
	_, err = ReadPath(fname, 1)
	assert.Error(t, err)
}
