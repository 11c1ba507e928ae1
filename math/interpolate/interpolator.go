/*package interpolate contains one-dimensional interpolators for tabulated
curves.
*/
package interpolate

// Interpolator is a tabulated function of one variable.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &Bounded{}
)

// evalAll is the shared implementation of EvalAll. If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience). If more than one output array is provided, only the first
// is used.
func evalAll(intr Interpolator, xs []float64, out [][]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = intr.Eval(x) }
	return out[0]
}
