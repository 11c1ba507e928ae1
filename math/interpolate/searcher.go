package interpolate

// searcher finds the interval containing a point in a strictly increasing
// sequence.
type searcher struct {
	xs []float64
	x0, dx float64
}

func (s *searcher) init(xs []float64) {
	if len(xs) < 2 {
		panic("Interpolation tables need at least two points.")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			panic("Interpolation table is not strictly increasing.")
		}
	}

	s.xs = xs
	s.x0 = xs[0]
	// Most tables are uniform. This is our estimate of the point spacing.
	s.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}

func (s *searcher) len() int { return len(s.xs) }

func (s *searcher) val(i int) float64 { return s.xs[i] }

// search returns the index of the largest element in xs which is not larger
// than x, clamped to [0, len(xs) - 2] so that i and i + 1 are always valid.
func (s *searcher) search(x float64) int {
	n := len(s.xs)

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < n-1 && s.xs[guess] <= x && x <= s.xs[guess+1] {
		return guess
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
