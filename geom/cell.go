package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cell is an orthorhombic simulation cell with periodic boundary conditions.
// Lengths holds the three edge lengths, all of which must be positive.
type Cell struct {
	Lengths r3.Vec
}

// NewCell creates a cell with the given edge lengths.
func NewCell(lx, ly, lz float64) (*Cell, error) {
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, fmt.Errorf(
			"Cell edge lengths must be positive, but are (%g, %g, %g).",
			lx, ly, lz,
		)
	}
	return &Cell{ r3.Vec{ X: lx, Y: ly, Z: lz } }, nil
}

// Cubic creates a cubic cell of width l.
func Cubic(l float64) *Cell {
	return &Cell{ r3.Vec{ X: l, Y: l, Z: l } }
}

// Volume returns the product of the three edge lengths of l.
func Volume(l r3.Vec) float64 { return l.X * l.Y * l.Z }

// Volume returns the volume of the cell.
func (c *Cell) Volume() float64 { return Volume(c.Lengths) }

// MinimumImage maps a displacement to the shortest equivalent displacement
// under periodic wrapping, d - L*round(d/L), componentwise. Ties round to
// even.
func (c *Cell) MinimumImage(d r3.Vec) r3.Vec {
	return r3.Vec{
		X: minimumImage(d.X, c.Lengths.X),
		Y: minimumImage(d.Y, c.Lengths.Y),
		Z: minimumImage(d.Z, c.Lengths.Z),
	}
}

func minimumImage(x, l float64) float64 {
	return x - l*math.RoundToEven(x/l)
}

// Rescale maps a position in c to the corresponding position in a cell with
// lengths to, scaling each axis by to/c.Lengths.
func (c *Cell) Rescale(r r3.Vec, to r3.Vec) r3.Vec {
	return r3.Vec{
		X: r.X * to.X / c.Lengths.X,
		Y: r.Y * to.Y / c.Lengths.Y,
		Z: r.Z * to.Z / c.Lengths.Z,
	}
}

// Displacements returns the N x N table of pairwise displacement vectors,
// d[i][j] = xs[i] - xs[j]. If cell is non-nil, every displacement is reduced
// to its minimum image. The diagonal is always the zero vector.
func Displacements(xs []r3.Vec, cell *Cell) [][]r3.Vec {
	n := len(xs)
	d := make([][]r3.Vec, n)
	buf := make([]r3.Vec, n*n)
	for i := range d { d[i] = buf[i*n: (i+1)*n] }

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dij := r3.Sub(xs[i], xs[j])
			if cell != nil { dij = cell.MinimumImage(dij) }
			d[i][j] = dij
			d[j][i] = r3.Scale(-1, dij)
		}
	}

	return d
}
