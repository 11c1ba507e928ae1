/*package moves scores force-biased ("smart") Monte Carlo proposals.

Every move type proposes x2 from x1 by a Langevin step: a deterministic drift
followed by isotropic Gaussian noise of variance 2 tau / beta. The functions
here never generate proposals. They return the unnormalized log-density of a
proposal and the Metropolis-Hastings ratio that a sampler compares against a
uniform draw. Ratios are not clamped to 1, and overflow to +Inf or underflow
to 0 are valid results meaning certain acceptance or certain rejection.
*/
package moves

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// LogTransition returns the log-density, without normalization, of
// proposing x2 from x1 with the given drift:
//
//     -sum |x2 - x1 - drift|^2 / (4 tau)
//
// The normalization constant cancels in every acceptance ratio.
func LogTransition(x1, x2, drift []r3.Vec, tau float64) float64 {
	if len(x1) != len(x2) || len(x1) != len(drift) {
		panic(fmt.Sprintf(
			"len(x1) = %d, len(x2) = %d, and len(drift) = %d are not equal.",
			len(x1), len(x2), len(drift),
		))
	}

	sum := 0.0
	for i := range x1 {
		sum += r3.Norm2(r3.Sub(r3.Sub(x2[i], x1[i]), drift[i]))
	}
	return -sum / (4 * tau)
}

// ForceDrift returns the drift tau * beta * f of a particle-like move.
func ForceDrift(f []r3.Vec, beta, tau float64) []r3.Vec {
	drift := make([]r3.Vec, len(f))
	for i := range f { drift[i] = r3.Scale(tau*beta, f[i]) }
	return drift
}
