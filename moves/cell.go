package moves

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/mcase/geom"
)

// CellState is an orthorhombic cell with the potential energy and diagonal
// stress of the configuration inside it. Stress is added to the pressure in
// the drift, so it must share the pressure's units and sign convention.
type CellState struct {
	Lengths r3.Vec
	Energy  float64
	Stress  r3.Vec
}

// Ensemble holds the isothermal-isobaric parameters shared by both ends of a
// cell move.
type Ensemble struct {
	Particles int
	Pressure  float64
	Beta      float64
}

// CellDrift returns the drift of the edge lengths l for a cell move,
//
//     (tau / l) * (N - beta vol(l) (P + s))
//
// componentwise, where s is the diagonal stress at l.
func CellDrift(l, stress r3.Vec, ens Ensemble, tau float64) r3.Vec {
	vol := geom.Volume(l)
	n := float64(ens.Particles)
	drift := func(lk, sk float64) float64 {
		return (tau / lk) * (n - ens.Beta*vol*(ens.Pressure+sk))
	}
	return r3.Vec{
		X: drift(l.X, stress.X),
		Y: drift(l.Y, stress.Y),
		Z: drift(l.Z, stress.Z),
	}
}

// CellLogTransition is the log-density of moving the edge lengths from l1 to
// l2, where stress is the diagonal stress at l1.
func CellLogTransition(l1, l2, stress r3.Vec, ens Ensemble, tau float64) float64 {
	drift := CellDrift(l1, stress, ens, tau)
	return LogTransition(
		[]r3.Vec{ l1 }, []r3.Vec{ l2 }, []r3.Vec{ drift }, tau,
	)
}

// IsotropicCellState is a cubic cell with edge length Length. Stress is the
// scalar stress conjugate to the edge length.
type IsotropicCellState struct {
	Length float64
	Energy float64
	Stress float64
}

// IsotropicCellDrift returns the drift of the edge length of a cubic cell,
// (tau / l) * (N - beta l^3 (P + s)).
func IsotropicCellDrift(l, s float64, ens Ensemble, tau float64) float64 {
	vol := l * l * l
	return (tau / l) * (float64(ens.Particles) - ens.Beta*vol*(ens.Pressure+s))
}

// IsotropicCellLogTransition is the log-density of moving the edge length of
// a cubic cell from l1 to l2. The kernel has a single degree of freedom, so
// it is not CellLogTransition evaluated on three equal lengths.
func IsotropicCellLogTransition(l1, l2, s float64, ens Ensemble, tau float64) float64 {
	drift := IsotropicCellDrift(l1, s, ens, tau)
	return LogTransition(
		[]r3.Vec{ { X: l1 } }, []r3.Vec{ { X: l2 } }, []r3.Vec{ { X: drift } },
		tau,
	)
}

// BiasedIsotropicCellAcceptance is BiasedCellAcceptance for moves which
// change only the edge length of a cubic cell.
func BiasedIsotropicCellAcceptance(
	c1, c2 IsotropicCellState, ens Ensemble, tau float64,
) float64 {
	t1 := IsotropicCellLogTransition(c1.Length, c2.Length, c1.Stress, ens, tau)
	t2 := IsotropicCellLogTransition(c2.Length, c1.Length, c2.Stress, ens, tau)
	vol1 := c1.Length * c1.Length * c1.Length
	vol2 := c2.Length * c2.Length * c2.Length
	return math.Exp(t2 - t1 + logVolumeRatio(
		c1.Energy, c2.Energy, vol1, vol2, ens,
	))
}

// VolumeAcceptance returns the unbiased acceptance ratio of a volume move,
//
//     exp(-beta (P (vol2 - vol1) + V2 - V1) + N ln(vol2 / vol1)).
//
// Both volumes must be positive.
func VolumeAcceptance(v1, v2, vol1, vol2 float64, ens Ensemble) float64 {
	return math.Exp(logVolumeRatio(v1, v2, vol1, vol2, ens))
}

func logVolumeRatio(v1, v2, vol1, vol2 float64, ens Ensemble) float64 {
	val := ens.Pressure*(vol2-vol1) + v2 - v1
	val *= -ens.Beta
	val += float64(ens.Particles) * math.Log(vol2/vol1)
	return val
}

// CellAcceptance returns the unbiased acceptance ratio of a cell move from c1
// to c2. Stresses are ignored.
func CellAcceptance(c1, c2 CellState, ens Ensemble) float64 {
	return VolumeAcceptance(
		c1.Energy, c2.Energy,
		geom.Volume(c1.Lengths), geom.Volume(c2.Lengths), ens,
	)
}

// BiasedCellAcceptance returns the acceptance ratio of a stress-biased cell
// move from c1 to c2. It is CellAcceptance multiplied by the Hastings
// correction exp(T(2 -> 1) - T(1 -> 2)), where each transition uses the
// stress at its starting cell.
func BiasedCellAcceptance(c1, c2 CellState, ens Ensemble, tau float64) float64 {
	t1 := CellLogTransition(c1.Lengths, c2.Lengths, c1.Stress, ens, tau)
	t2 := CellLogTransition(c2.Lengths, c1.Lengths, c2.Stress, ens, tau)
	return math.Exp(t2 - t1 + logVolumeRatio(
		c1.Energy, c2.Energy,
		geom.Volume(c1.Lengths), geom.Volume(c2.Lengths), ens,
	))
}
