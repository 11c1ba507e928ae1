package interpolate

// Bounded restricts an interpolator to the closed interval [Lo, Hi]. Every
// point outside that interval, and NaN, evaluates to exactly zero.
type Bounded struct {
	Lo, Hi float64
	intr Interpolator
}

// NewBounded restricts intr to [lo, hi].
func NewBounded(intr Interpolator, lo, hi float64) *Bounded {
	if !(lo <= hi) {
		panic("Bounded interval has lo > hi.")
	}
	return &Bounded{ Lo: lo, Hi: hi, intr: intr }
}

// NewBoundedLinear is a linear interpolator over xs which is zero outside
// [xs[0], xs[len(xs) - 1]].
func NewBoundedLinear(xs, vals []float64) *Bounded {
	lin := NewLinear(xs, vals)
	return NewBounded(lin, lin.Min(), lin.Max())
}

// Contains returns true if x lies inside [Lo, Hi].
func (b *Bounded) Contains(x float64) bool { return x >= b.Lo && x <= b.Hi }

func (b *Bounded) Eval(x float64) float64 {
	if !b.Contains(x) { return 0 }
	return b.intr.Eval(x)
}

func (b *Bounded) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(b, xs, out)
}
