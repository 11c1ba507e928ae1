/*package quantum couples the replica slices of a path-integral ring polymer.

A path is a slice of M >= 2 replica configurations, path[k][i] being the
position of particle i in slice k. Slices are connected in a closed loop:
slice k is bonded to slices k - 1 and k + 1 modulo M by harmonic springs
whose stiffness is set by the inverse temperature and the imaginary time step.
*/
package quantum

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/mcase/geom"
	"github.com/phil-mansfield/mcase/moves"
)

// Ring holds the parameters of the spring coupling.
type Ring struct {
	Beta, Tau float64
	// MinimumImage selects whether spring displacements are reduced to their
	// minimum image in Cell. It is never turned on implicitly.
	MinimumImage bool
	Cell         *geom.Cell
}

// NewRing creates a ring with inverse temperature beta and imaginary time
// step tau. cell may be nil only if minimumImage is false.
func NewRing(beta, tau float64, cell *geom.Cell, minimumImage bool) (*Ring, error) {
	if beta <= 0 {
		return nil, fmt.Errorf("Beta must be positive, but is %g.", beta)
	} else if tau <= 0 {
		return nil, fmt.Errorf(
			"Imaginary time step must be positive, but is %g.", tau,
		)
	} else if minimumImage && cell == nil {
		return nil, fmt.Errorf("Minimum image springs require a cell.")
	}
	return &Ring{
		Beta: beta, Tau: tau, MinimumImage: minimumImage, Cell: cell,
	}, nil
}

// sub returns a - b, wrapped if the ring uses minimum images.
func (ring *Ring) sub(a, b r3.Vec) r3.Vec {
	d := r3.Sub(a, b)
	if ring.MinimumImage { d = ring.Cell.MinimumImage(d) }
	return d
}

func checkPath(path [][]r3.Vec) {
	if len(path) < 2 {
		panic(fmt.Sprintf("Ring has %d slices, but needs at least 2.", len(path)))
	}
	for k := range path {
		if len(path[k]) != len(path[0]) {
			panic(fmt.Sprintf(
				"Slice %d has %d particles, but slice 0 has %d.",
				k, len(path[k]), len(path[0]),
			))
		}
	}
}

func prev(k, m int) int { return (k + m - 1) % m }
func next(k, m int) int { return (k + 1) % m }

// SpringEnergy returns the spring energy of the whole ring,
//
//     1/2 sum_k sum_i |path[k][i] - path[k-1][i]|^2 / (beta tau).
func (ring *Ring) SpringEnergy(path [][]r3.Vec) float64 {
	checkPath(path)
	m := len(path)

	sum := 0.0
	for k := range path {
		kp := prev(k, m)
		for i := range path[k] {
			sum += r3.Norm2(ring.sub(path[k][i], path[kp][i]))
		}
	}
	return 0.5 * sum / (ring.Beta * ring.Tau)
}

// centroid returns the average of the neighbors a and b. With minimum images
// the neighbors are first moved to their images nearest ref.
func (ring *Ring) centroid(ref, a, b []r3.Vec) []r3.Vec {
	rc := make([]r3.Vec, len(ref))
	for i := range rc {
		if ring.MinimumImage {
			da, db := ring.sub(a[i], ref[i]), ring.sub(b[i], ref[i])
			rc[i] = r3.Add(ref[i], r3.Scale(0.5, r3.Add(da, db)))
		} else {
			rc[i] = r3.Scale(0.5, r3.Add(a[i], b[i]))
		}
	}
	return rc
}

// Centroid returns the average of the two ring neighbors of slice k.
func (ring *Ring) Centroid(path [][]r3.Vec, k int) []r3.Vec {
	checkPath(path)
	m := len(path)
	return ring.centroid(path[k], path[prev(k, m)], path[next(k, m)])
}

// Centroids returns the neighbor centroid of every slice.
func (ring *Ring) Centroids(path [][]r3.Vec) [][]r3.Vec {
	rcs := make([][]r3.Vec, len(path))
	for k := range path { rcs[k] = ring.Centroid(path, k) }
	return rcs
}

// SpringForce returns the spring force on each particle of a slice whose
// neighbor centroid is rc, 2 (rc - r) / (beta tau).
func (ring *Ring) SpringForce(slice, rc []r3.Vec) []r3.Vec {
	checkSlice(slice, rc)
	f := make([]r3.Vec, len(slice))
	k := 2 / (ring.Beta * ring.Tau)
	for i := range slice {
		f[i] = r3.Scale(k, ring.sub(rc[i], slice[i]))
	}
	return f
}

// SliceEnergy returns the energy of the two springs joining slice to its ring
// neighbors a and b,
//
//     1/2 sum_i (|r_i - a_i|^2 + |r_i - b_i|^2) / (beta tau).
//
// This is the part of SpringEnergy which changes when only this slice moves,
// with or without minimum images. SpringForce is its negative gradient.
func (ring *Ring) SliceEnergy(slice, a, b []r3.Vec) float64 {
	checkSlice(slice, a)
	checkSlice(slice, b)
	sum := 0.0
	for i := range slice {
		sum += r3.Norm2(ring.sub(slice[i], a[i]))
		sum += r3.Norm2(ring.sub(slice[i], b[i]))
	}
	return 0.5 * sum / (ring.Beta * ring.Tau)
}

func checkSlice(slice, other []r3.Vec) {
	if len(slice) != len(other) {
		panic(fmt.Sprintf(
			"Slice has %d particles, but expected %d.", len(slice), len(other),
		))
	}
}

// SliceState returns the state used to score a move of slice k to the
// positions given by slice, with every other slice of path held fixed. The
// energy and forces are the spring contributions only.
func (ring *Ring) SliceState(path [][]r3.Vec, k int, slice []r3.Vec) moves.ParticleState {
	checkPath(path)
	m := len(path)
	a, b := path[prev(k, m)], path[next(k, m)]
	rc := ring.centroid(slice, a, b)
	return moves.ParticleState{
		Positions: slice,
		Energy:    ring.SliceEnergy(slice, a, b),
		Forces:    ring.SpringForce(slice, rc),
	}
}

// RescalePath scales every replica of path from the cell with lengths oldL to
// the cell with lengths newL, for use with cell moves.
func RescalePath(path [][]r3.Vec, oldL, newL r3.Vec) [][]r3.Vec {
	cell := &geom.Cell{ Lengths: oldL }
	out := make([][]r3.Vec, len(path))
	for k := range path {
		out[k] = make([]r3.Vec, len(path[k]))
		for i := range path[k] { out[k][i] = cell.Rescale(path[k][i], newL) }
	}
	return out
}
