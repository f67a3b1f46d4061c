package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/simd/f64"
)

const (
	// Test tolerances
	sumTolerance           = 1e-12
	orthogonalityTolerance = 1e-10

	// Expected tap sums after normalization
	lowPassSum  = 1.0
	highPassSum = 0.0
)

// TestCoefficients_Length verifies that every supported order yields 2*order taps.
func TestCoefficients_Length(t *testing.T) {
	for order := MinOrder; order <= MaxOrder; order++ {
		for _, lowPass := range []bool{true, false} {
			taps, err := Coefficients(order, lowPass)
			require.NoError(t, err, "order %d", order)
			assert.Len(t, taps, 2*order, "order %d, lowPass %v", order, lowPass)
		}
	}
}

// TestCoefficients_TapSums verifies the normalization convention:
// low-pass taps sum to 1, high-pass taps sum to 0.
func TestCoefficients_TapSums(t *testing.T) {
	for order := MinOrder; order <= MaxOrder; order++ {
		h, err := Coefficients(order, true)
		require.NoError(t, err)
		assert.InDelta(t, lowPassSum, f64.Sum(h), sumTolerance,
			"low-pass sum for order %d", order)

		g, err := Coefficients(order, false)
		require.NoError(t, err)
		assert.InDelta(t, highPassSum, f64.Sum(g), orthogonalityTolerance,
			"high-pass sum for order %d", order)
	}
}

// TestCoefficients_DoubleShiftOrthogonality verifies the orthonormality
// condition of the Daubechies family at even shifts. With the sum-1
// normalization, sum_k h[k]*h[k+2m] equals 1/2 for m=0 and 0 otherwise.
func TestCoefficients_DoubleShiftOrthogonality(t *testing.T) {
	for order := MinOrder; order <= MaxOrder; order++ {
		h, err := Coefficients(order, true)
		require.NoError(t, err)

		for m := 0; m < order; m++ {
			var dot float64
			for k := 0; k+2*m < len(h); k++ {
				dot += h[k] * h[k+2*m]
			}

			want := 0.0
			if m == 0 {
				want = 0.5
			}
			assert.InDelta(t, want, dot, orthogonalityTolerance,
				"order %d, shift %d", order, 2*m)
		}
	}
}

// TestCoefficients_QuadratureMirror verifies the high-pass derivation
// g[k] = (-1)^k h[2n-1-k].
func TestCoefficients_QuadratureMirror(t *testing.T) {
	h, err := Coefficients(4, true)
	require.NoError(t, err)
	g, err := Coefficients(4, false)
	require.NoError(t, err)

	n := len(h)
	for k := range n {
		want := h[n-1-k]
		if k%2 == 1 {
			want = -want
		}
		assert.InDelta(t, want, g[k], sumTolerance, "tap %d", k)
	}
}

// TestCoefficients_UnsupportedOrder verifies error reporting for bad orders.
func TestCoefficients_UnsupportedOrder(t *testing.T) {
	for _, order := range []int{-1, 0, 1, MaxOrder + 1, 100} {
		_, err := Coefficients(order, true)
		assert.Error(t, err, "order %d should be rejected", order)
	}
}

// TestSupportWidth verifies the support width formula.
func TestSupportWidth(t *testing.T) {
	assert.Equal(t, 3, SupportWidth(2))
	assert.Equal(t, 7, SupportWidth(4))
	assert.Equal(t, 19, SupportWidth(10))
}
