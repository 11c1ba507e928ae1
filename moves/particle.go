package moves

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ParticleState is a configuration together with its potential energy and
// the force on every particle.
type ParticleState struct {
	Positions []r3.Vec
	Energy    float64
	Forces    []r3.Vec
}

// ParticleLogTransition is the log-density of moving the particles from r1 to
// r2, where f1 is the force at r1.
func ParticleLogTransition(r1, r2, f1 []r3.Vec, beta, tau float64) float64 {
	return LogTransition(r1, r2, ForceDrift(f1, beta, tau), tau)
}

// ParticleAcceptance returns the acceptance ratio of a particle move from s1
// to s2,
//
//     exp(T(2 -> 1) - T(1 -> 2) - beta (V2 - V1)).
func ParticleAcceptance(s1, s2 ParticleState, beta, tau float64) float64 {
	t1 := ParticleLogTransition(s1.Positions, s2.Positions, s1.Forces, beta, tau)
	t2 := ParticleLogTransition(s2.Positions, s1.Positions, s2.Forces, beta, tau)
	return math.Exp(t2 - t1 - beta*(s2.Energy-s1.Energy))
}

// BeadAcceptance returns the acceptance ratio of moving a replica slice of a
// ring polymer. The states hold the slice positions, the energy that depends
// on the slice, and the spring forces acting on it. The ratio has the same
// form as ParticleAcceptance.
func BeadAcceptance(s1, s2 ParticleState, beta, tau float64) float64 {
	return ParticleAcceptance(s1, s2, beta, tau)
}
