package cascade

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	// minFilterTaps is the shortest meaningful Daubechies filter (order 2).
	minFilterTaps = 4

	// twoScaleFactor is the coefficient scale in the dilation relation:
	// phi(x) = sum_k 2*h[k] * phi(2x - k) for sum-1 normalized taps.
	twoScaleFactor = 2.0
)

// TransitionMatrices builds the pair of dyadic transition matrices M0 and M1
// from a filter coefficient sequence of length 2*order.
//
// Both matrices are square with dimension N = 2*order - 1, the support width.
// With shift = 2*i - j:
//
//	M0[i][j] = 2*h[shift]   for 0 <= shift <= N
//	M1[i][j] = 2*h[shift+1] for -1 <= shift <= N-1
//
// Entries outside these bands stay zero. M0 encodes even-shift contributions
// of the two-scale relation, M1 the odd-shift contributions.
func TransitionMatrices(coeffs []float64) (m0, m1 *mat.Dense, err error) {
	numTaps := len(coeffs)
	if numTaps < minFilterTaps || numTaps%2 != 0 {
		return nil, nil, fmt.Errorf("%w: got %d taps, want an even count of at least %d",
			ErrInvalidFilter, numTaps, minFilterTaps)
	}

	n := numTaps - 1
	m0 = mat.NewDense(n, n, nil)
	m1 = mat.NewDense(n, n, nil)

	for i := range n {
		for j := range n {
			shift := 2*i - j
			if shift >= 0 && shift <= n {
				m0.Set(i, j, twoScaleFactor*coeffs[shift])
			}
			if shift >= -1 && shift <= n-1 {
				m1.Set(i, j, twoScaleFactor*coeffs[shift+1])
			}
		}
	}

	return m0, m1, nil
}
