package cascade

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"
)

const (
	// svZeroTolerance is the relative threshold (against the largest singular
	// value) under which the smallest singular value counts as zero. The
	// eigenvector extraction is only reliable when the target eigenvalue is
	// genuinely present, i.e. M0 - lambda*I is numerically singular.
	svZeroTolerance = 1e-8

	// svSeparationTolerance is the relative threshold the second-smallest
	// singular value must exceed; two near-zero singular values mean a
	// degenerate eigenspace and an ambiguous eigenvector.
	svSeparationTolerance = 1e-6

	// momentTolerance guards the normalization divisor against values so
	// small that the normalized vector would be meaningless.
	momentTolerance = 1e-12

	// refinementEigenbase is the eigenvalue base of the two-scale relation:
	// the deriv-th derivative is the eigenvector for eigenvalue 0.5^deriv.
	refinementEigenbase = 0.5
)

// IntegerValues computes the values of the scaling function's deriv-th
// derivative at the integer points of its support, as the eigenvector of the
// low-pass transition matrix M0 for eigenvalue 0.5^deriv.
//
// The eigenvector is extracted as the right-singular vector belonging to the
// smallest singular value of A = M0 - 0.5^deriv * I. For a well-formed
// Daubechies filter that singular value is numerically zero; an explicit
// isolation check rejects matrices where it is not, or where a second
// near-zero singular value makes the eigenspace ambiguous.
//
// The result is normalized against the lattice moment condition
//
//	sum_{i>=1} v[i] * (-i)^deriv = 1
//
// which fixes both scale and sign (v[0] is zero for Daubechies functions and
// takes no part in the sum).
//
// Returns ErrNoConvergence, ErrDegenerate or ErrIllConditioned on the
// corresponding fatal numeric failures.
func IntegerValues(m0 *mat.Dense, deriv int) ([]float64, error) {
	n, cols := m0.Dims()
	if n != cols || n < 1 {
		return nil, fmt.Errorf("transition matrix is %dx%d, want square", n, cols)
	}
	if deriv < 0 {
		return nil, fmt.Errorf("negative derivative order %d", deriv)
	}

	eigenvalue := math.Pow(refinementEigenbase, float64(deriv))

	a := mat.DenseCopyOf(m0)
	for i := range n {
		a.Set(i, i, a.At(i, i)-eigenvalue)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThinV); !ok {
		return nil, fmt.Errorf("%w: eigenvalue %g", ErrNoConvergence, eigenvalue)
	}

	// Singular values come back in descending order; the eigenvector is the
	// right-singular vector of the smallest one.
	s := svd.Values(nil)
	largest, smallest := s[0], s[n-1]

	if smallest > svZeroTolerance*largest {
		return nil, fmt.Errorf("%w: residual singular value %g for eigenvalue %g",
			ErrDegenerate, smallest, eigenvalue)
	}
	if n > 1 && s[n-2] <= svSeparationTolerance*largest {
		return nil, fmt.Errorf("%w: second singular value %g too close to zero",
			ErrDegenerate, s[n-2])
	}

	var v mat.Dense
	svd.VTo(&v)
	values := mat.Col(nil, n-1, &v)

	var moment float64
	for i := 1; i < n; i++ {
		moment += values[i] * math.Pow(float64(-i), float64(deriv))
	}
	if math.Abs(moment) < momentTolerance {
		return nil, fmt.Errorf("%w: moment sum %g for derivative order %d",
			ErrIllConditioned, moment, deriv)
	}

	f64.Scale(values, values, 1/moment)

	return values, nil
}
