package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r3"
)

var positionColumns = []int{ 0, 1, 2 }

// ReadPositions reads a configuration from a text file whose first three
// columns are the x, y, and z coordinates of one particle per row.
func ReadPositions(fname string) ([]r3.Vec, error) {
	cols, err := table.ReadTable(fname, positionColumns, nil)
	if err != nil { return nil, err }
	return vectors(cols), nil
}

// ReadPath reads a ring polymer with m slices from a positions file. Rows are
// ordered slice-major: the first N rows are slice 0, the next N slice 1, and
// so on.
func ReadPath(fname string, m int) ([][]r3.Vec, error) {
	if m < 2 {
		return nil, fmt.Errorf("A ring needs at least 2 slices, not %d.", m)
	}

	xs, err := ReadPositions(fname)
	if err != nil { return nil, err }
	if len(xs) % m != 0 || len(xs) == 0 {
		return nil, fmt.Errorf(
			"%s has %d rows, which cannot be split into %d slices.",
			fname, len(xs), m,
		)
	}

	n := len(xs) / m
	path := make([][]r3.Vec, m)
	for k := range path { path[k] = xs[k*n: (k+1)*n] }
	return path, nil
}

func vectors(cols [][]float64) []r3.Vec {
	xs, ys, zs := cols[0], cols[1], cols[2]
	vs := make([]r3.Vec, len(xs))
	for i := range vs { vs[i] = r3.Vec{ X: xs[i], Y: ys[i], Z: zs[i] } }
	return vs
}
