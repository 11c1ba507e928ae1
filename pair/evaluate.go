package pair

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/mcase/geom"
)

// Evaluate returns the total pair energy and the force on every particle for
// the N x N table of displacements d, where d[i][j] = r_i - r_j (reduced to
// the minimum image if the system is periodic).
//
// Each unordered pair is visited twice, so the energy is half the sum over
// ordered pairs. The force on particle i is sum_j f(|d_ij|) d_ij / |d_ij|.
// Self pairs, i == j, are skipped and contribute nothing to either quantity,
// as do coincident distinct particles, which have no defined direction.
func Evaluate(d [][]r3.Vec, pot Potential) (energy float64, forces []r3.Vec) {
	n := len(d)
	es := make([]float64, n)
	forces = make([]r3.Vec, n)

	for i := 0; i < n; i++ {
		if len(d[i]) != n {
			panic(fmt.Sprintf(
				"Displacement table row %d has length %d, but there are %d " +
					"rows.", i, len(d[i]), n,
			))
		}

		for j := 0; j < n; j++ {
			if i == j { continue }

			r := r3.Norm(d[i][j])
			es[i] += pot.Energy(r)

			f := pot.Force(r)
			if f == 0 || r == 0 { continue }
			forces[i] = r3.Add(forces[i], r3.Scale(f/r, d[i][j]))
		}
	}

	return 0.5 * floats.Sum(es), forces
}

// Sample is a reference configuration together with the energy and forces
// computed for it by an external calculator.
type Sample struct {
	Positions []r3.Vec
	// Cell is nil for non-periodic samples.
	Cell   *geom.Cell
	Energy float64
	Forces []r3.Vec
}

// Subtract returns copies of samples with the pair contribution of pot
// removed from their energies and forces. The input samples are not
// modified.
func Subtract(samples []Sample, pot Potential) []Sample {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		if len(s.Forces) != len(s.Positions) {
			panic(fmt.Sprintf(
				"Sample %d has %d positions but %d forces.",
				i, len(s.Positions), len(s.Forces),
			))
		}

		e, fs := Evaluate(geom.Displacements(s.Positions, s.Cell), pot)
		for k := range fs { fs[k] = r3.Sub(s.Forces[k], fs[k]) }

		out[i] = Sample{
			Positions: append([]r3.Vec(nil), s.Positions...),
			Cell:      s.Cell,
			Energy:    s.Energy - e,
			Forces:    fs,
		}
	}
	return out
}
